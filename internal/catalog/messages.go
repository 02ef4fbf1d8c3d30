package catalog

import "subquest/internal/domain"

// Messages are the texts shared by all tasks. Fields ending in F are
// fmt format strings.
type Messages struct {
	LanguagePrompt string
	LanguageChosen string
	Gate           string
	Welcome        string
	StartHint      string
	TextExpected   string
	AttemptsLeftF  string // remaining attempts
	RevealF        string // correct answer
	PhotoProgressF string // received, required, remaining
	PhotoEnoughF   string // required
	SinkFailed     string
	StorageFailed  string
	IdentityF      string // user id

	SinkPhotosF    string // handle, count, task
	SinkCompletedF string // handle, task

	AdminAddedF   string // user id
	AdminRemovedF string // user id
	AdminUsageF   string // command
	AdminDenied   string
	AdminFailed   string
}

const languagePrompt = "🌍 Выберите язык / Choose your language:"

var messages = map[domain.Language]Messages{
	domain.LangRU: {
		LanguagePrompt: languagePrompt,
		LanguageChosen: "✅ Вы выбрали русский язык!\n\nТеперь можно начинать квест! 🚀",
		Gate: "🔒 *Доступ к боту закрыт*\n\n" +
			"Чтобы получить доступ, сделай следующее:\n\n" +
			"1️⃣ Напиши мне ([Hristina](https://t.me/Hristina_Photo)) — расскажу, как оплатить доступ.\n" +
			"2️⃣ Оплати доступ по инструкциям.\n" +
			"3️⃣ Узнай свой Telegram ID — напиши /id в этом чате.\n" +
			"4️⃣ Пришли мне свой ID ([Hristina](https://t.me/Hristina_Photo)).\n" +
			"5️⃣ Я добавлю тебя в список — после этого бот будет доступен.\n" +
			"6️⃣ Запусти бота — напиши /start\n\n" +
			"❓ Если что-то не получается, напиши мне!",
		Welcome: "👋 Добро пожаловать в Subotica Quest!\n\n" +
			"Этот квест сделает твою прогулку по Суботице увлекательнее.\n" +
			"Прояви креативность и главное — наслаждайся процессом!\n\n" +
			"Готов начать? Тогда вперед! 🚀",
		StartHint:      "Напиши /start, чтобы начать квест.",
		TextExpected:   "❌ Здесь нужен текстовый ответ!",
		AttemptsLeftF:  "Осталось попыток: %d",
		RevealF:        "❌ Правильный ответ: %s. Двигаемся дальше!",
		PhotoProgressF: "📸 Фото %d/%d принято! Жду ещё %d.",
		PhotoEnoughF:   "⚠️ Достаточно %d фото!",
		SinkFailed:     "⚠️ Не удалось передать фото. Попробуй отправить его ещё раз.",
		StorageFailed:  "⚠️ Что-то пошло не так. Напиши /start, чтобы начать заново.",
		IdentityF:      "`%d`",

		SinkPhotosF:    "📷 %s отправил %d фото для задания %d",
		SinkCompletedF: "📷 %s завершил квест и отправил фото для задания %d",

		AdminAddedF:   "✅ Пользователь %d добавлен в список.",
		AdminRemovedF: "🗑 Пользователь %d удалён из списка.",
		AdminUsageF:   "Использование: /%s <id>",
		AdminDenied:   "⛔ У тебя нет прав на эту команду.",
		AdminFailed:   "⚠️ Не удалось сохранить список доступа, попробуй позже.",
	},
	domain.LangEN: {
		LanguagePrompt: languagePrompt,
		LanguageChosen: "✅ You have chosen English!\n\nNow you can start the quest! 🚀",
		Gate: "🔒 *Access to the bot is restricted*\n\n" +
			"To get access, follow these steps:\n\n" +
			"1️⃣ Message me ([Hristina](https://t.me/Hristina_Photo)) — I'll explain how to pay.\n" +
			"2️⃣ Complete the payment following the instructions.\n" +
			"3️⃣ Find your Telegram ID — type /id in this chat.\n" +
			"4️⃣ Send me your ID ([Hristina](https://t.me/Hristina_Photo)).\n" +
			"5️⃣ I'll add you to the list — then the bot will be available.\n" +
			"6️⃣ Start the bot — type /start\n\n" +
			"❓ If you have any issues, message me!",
		Welcome: "👋 Welcome to the Subotica Quest!\n\n" +
			"This quest will make your walk through Subotica more exciting.\n" +
			"Be creative and, most importantly, enjoy the process!\n\n" +
			"Ready to start? Let's go! 🚀",
		StartHint:      "Type /start to begin the quest.",
		TextExpected:   "❌ This task needs a text answer!",
		AttemptsLeftF:  "Attempts left: %d",
		RevealF:        "❌ Correct answer: %s. Moving on!",
		PhotoProgressF: "📸 Photo %d/%d received! Waiting for %d more.",
		PhotoEnoughF:   "⚠️ %d photos are enough!",
		SinkFailed:     "⚠️ Your photo could not be delivered. Please send it again.",
		StorageFailed:  "⚠️ Something went wrong. Type /start to begin again.",
		IdentityF:      "`%d`",

		SinkPhotosF:    "📷 %s sent %d photo(s) for task %d",
		SinkCompletedF: "📷 %s finished the quest with a photo for task %d",

		AdminAddedF:   "✅ User %d added to the list.",
		AdminRemovedF: "🗑 User %d removed from the list.",
		AdminUsageF:   "Usage: /%s <id>",
		AdminDenied:   "⛔ You are not allowed to use this command.",
		AdminFailed:   "⚠️ Could not save the access list, try again later.",
	},
}

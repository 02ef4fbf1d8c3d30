package catalog

import "subquest/internal/domain"

type texts = map[domain.Language]domain.TaskTexts

func suboticaTasks() []domain.Task {
	return []domain.Task{
		{
			Number:  1,
			Kind:    domain.KindText,
			Answers: []string{"7", "семь", "seven"},
			Texts: texts{
				domain.LangRU: {
					Prompt: "🦇 Задание 1\n" +
						"У вокзала, где улица дышит тишиной,\n" +
						"Крылатая стража нашла угол свой.\n" +
						"Найди её облик на каменной глади —\n" +
						"А сколько ступенек ведут к её „зграде“?",
					Success: "✅ Правильно! Двигаемся дальше!",
					Retry:   "❌ Не совсем. Посчитай ещё раз!",
					Answer:  "7",
				},
				domain.LangEN: {
					Prompt: "🦇 Task 1\n" +
						"Near the station, where streets are so still,\n" +
						"Winged guardians stand, as if time’s at a chill.\n" +
						"Find their reflection on stone standing tall —\n" +
						"And how many steps lead up to their hall?",
					Success: "✅ Correct! Moving on!",
					Retry:   "❌ Not quite. Count again!",
					Answer:  "7",
				},
			},
		},
		{
			Number: 2,
			Kind:   domain.KindPhotos,
			Photos: 3,
			Texts: texts{
				domain.LangRU: {
					Prompt: "🩷 Задание 2\n" +
						"В фасадах и плитке, в кованых узорах\n" +
						"Скрываются сердца в городских просторах.\n" +
						"Найди их на зданиях — три отыщи,\n" +
						"Выбери снимки и мне отошли!",
					Success:   "✅ Отличная коллекция! Следующее задание!",
					WrongKind: "❌ Это фото-задание! Пожалуйста, отправь 3 снимка.",
				},
				domain.LangEN: {
					Prompt: "🩷 Task 2\n" +
						"In facades and tiles, in ironwork’s grace,\n" +
						"Hearts hide away in the city’s embrace.\n" +
						"Find them on buildings—three is the key,\n" +
						"Capture their images, then send them to me!",
					Success:   "✅ Great collection! Next task!",
					WrongKind: "❌ This is a photo task! Please send 3 pictures.",
				},
			},
		},
		{
			Number: 3,
			Kind:   domain.KindFreeText,
			Texts: texts{
				domain.LangRU: {
					Prompt: "📖 Задание 3\n" +
						"В книжный зайди, отыщи без труда\n" +
						"Книгу, что в сердце твоём навсегда.\n" +
						"Название новое вслух прочитай —\n" +
						"Как на сербском звучит, отвечай!",
					Success: "📚 Интересный выбор! Идем дальше!",
				},
				domain.LangEN: {
					Prompt: "📖 Task 3\n" +
						"Step into a bookstore, go take a glance,\n" +
						"Find a dear book that has you entranced.\n" +
						"Read out its title, fresh and anew —\n" +
						"Now, tell me in Serbian, how does it sound to you?",
					Success: "📚 Interesting choice! Let's continue!",
				},
			},
		},
		{
			Number: 4,
			Kind:   domain.KindPhotos,
			Photos: 1,
			Texts: texts{
				domain.LangRU: {
					Prompt: "🚪 Задание 4\n" +
						"Найди любую открытую дверь,\n" +
						"Внутрь загляни, тишине лишь поверь.\n" +
						"Лестницы стройной изгибы узри\n" +
						"И фото двери мне скорее пришли!",
					Success:   "✅ Отличное фото! Следующее задание!",
					WrongKind: "❌ Пожалуйста, пришли фото двери!",
				},
				domain.LangEN: {
					Prompt: "🚪 Task 4\n" +
						"Find any doorway that stands open wide,\n" +
						"Peek in and trust in the silence inside.\n" +
						"See how the staircase so gracefully bends,\n" +
						"And send me a photo—I'll wait, my friend!",
					Success:   "✅ Great photo! Next task!",
					WrongKind: "❌ Please send a photo of the door!",
				},
			},
		},
		{
			Number:  5,
			Kind:    domain.KindText,
			Answers: []string{"бронза", "bronze", "bronza"},
			Texts: texts{
				domain.LangRU: {
					Prompt: "🏛 Задание 5\n" +
						"В центре Суботицы, где жизни быстрый ход,\n" +
						"Миниатюра города тихо живёт.\n" +
						"Вглядись, рассмотри, все детали узнай,\n" +
						"Из чего он создан — скорей отгадай!",
					Success: "✅ Ура! Это правильный ответ.",
					Retry:   "❌ Не совсем. Подумай ещё!",
					Answer:  "бронза",
				},
				domain.LangEN: {
					Prompt: "🏛 Task 5\n" +
						"In the heart of Subotica, where life rushes by,\n" +
						"A miniature city stands quiet and shy.\n" +
						"Look closely, observe, every detail explore —\n" +
						"Guess what it's made of, and tell me once more!",
					Success: "✅ Hooray! That's the correct answer!",
					Retry:   "❌ Not quite. Think again!",
					Answer:  "bronze",
				},
			},
		},
		{
			Number: 6,
			Kind:   domain.KindPhotos,
			Photos: 1,
			Texts: texts{
				domain.LangRU: {
					Prompt: "⛲️ Задание 6\n" +
						"Два архитектора и 'magnum opus' рядом —\n" +
						"Полны любовью, вдохновением их взгляды.\n" +
						"Когда найдешь их - время не теряй\n" +
						"Используй камеру и фото отправляй!",
					Success:   "✅ Отлично! Теперь следующее задание!",
					WrongKind: "❌ Пожалуйста, отправь фото архитекторов!",
				},
				domain.LangEN: {
					Prompt: "⛲️ Task 6\n" +
						"Two architects stand with their magnum opus near,\n" +
						"Their eyes full of love and inspiration sincere.\n" +
						"Once you have found them, don’t waste any time —\n" +
						"Capture the moment and send me the sign!",
					Success:   "✅ Great! Now, the next task!",
					WrongKind: "❌ Please send a photo of the architects!",
				},
			},
		},
		{
			Number:  7,
			Kind:    domain.KindText,
			Answers: []string{"мерак", "merak"},
			Texts: texts{
				domain.LangRU: {
					Prompt: "🧘‍♂️ Задание 7\n" +
						"Метание духа оставь позади,\n" +
						"Единство суеты и тишины в груди.\n" +
						"Расслабься, где кофе, уют и покой,\n" +
						"А радость была ведь всегда под рукой.\n" +
						"Когда все поймешь - ответ ты найдешь!",
					Success: "✅ Верно! Надеюсь, ты смог насладиться моментом!",
					Retry:   "❌ Подумай ещё! Это связано с приятными моментами.",
					Answer:  "мерак",
				},
				domain.LangEN: {
					Prompt: "🧘‍♂️ Task 7\n" +
						"Mindful, let go of the chaos inside,\n" +
						"Embrace both the rush and the calm side by side.\n" +
						"Relax where the coffee brings warmth to your soul,\n" +
						"And joy was right there, always whole.\n" +
						"Know it at last—your answer is cast!",
					Success: "✅ Correct! I hope you enjoyed the moment!",
					Retry:   "❌ Think again! It's connected to pleasant moments.",
					Answer:  "merak",
				},
			},
		},
		{
			Number:  8,
			Kind:    domain.KindText,
			Answers: []string{"петра драпшина", "petra drapšina", "petra drapsina"},
			Texts: texts{
				domain.LangRU: {
					Prompt: "📍 Задание 8\n" +
						"Там, где камень лежит вековой под ногой,\n" +
						"Начинает улицу магазин обувной.\n" +
						"Мощёная, древняя, манит пройтись\n" +
						"Названье пиши и на ней окажись.",
					Success: "✅ Правильно! Приятной прогулки!",
					Retry:   "❌ Подумай ещё! Это узкая, мощёная улица в центре.",
					Answer:  "Петра Драпшина",
				},
				domain.LangEN: {
					Prompt: "📍 Task 8\n" +
						"Where ancient stone lies beneath your feet,\n" +
						"A shoe shop stands where the street does meet.\n" +
						"Cobblestones whisper, inviting your pace —\n" +
						"Write down its name and go find the place!",
					Success: "✅ Correct! Enjoy your walk!",
					Retry:   "❌ Think again! It's a narrow, cobbled street in the center.",
					Answer:  "Petra Drapšina",
				},
			},
		},
		{
			Number:  9,
			Kind:    domain.KindText,
			Answers: []string{"лангош", "langos", "langoš", "lángos"},
			Texts: texts{
				domain.LangRU: {
					Prompt: "🥞 Задание 9\n" +
						"В Суботице, где вкусно и тепло,\n" +
						"Лепешка жарится, пахнет — просто волшебство.\n" +
						"Венгерская, с хрустящей корочкой, она,\n" +
						"Назови её имя — и загадка решена.",
					Success: "✅ Верно! Надеюсь, ты попробуешь его!",
					Retry:   "❌ Подумай ещё! Это популярная венгерская уличная еда.",
					Answer:  "лангош",
				},
				domain.LangEN: {
					Prompt: "🥞 Task 9\n" +
						"In Subotica, where it’s warm and bright,\n" +
						"A flatbread sizzles—oh, what a delight!\n" +
						"Hungarian, crispy, golden to see,\n" +
						"Say its name, and the riddle’s set free!",
					Success: "✅ Correct! Hope you try it!",
					Retry:   "❌ Think again! It's a popular Hungarian street food.",
					Answer:  "langos",
				},
			},
		},
		{
			Number: 10,
			Kind:   domain.KindPhotos,
			Photos: 1,
			Texts: texts{
				domain.LangRU: {
					Prompt: "📸 Задание 10\n" +
						"Сними тот миг, что в сердце отзовётся,\n" +
						"Где город нежно дарит свой привет.\n" +
						"Пусть в кадре атмосфера остаётся,\n" +
						"Такой, какой запомнишь ты навек.",
					Success: "✅ Замечательный снимок Суботицы!\n\n" +
						"✨ Буду рада, если ты подпишешься на меня в Instagram: [@hristy_life](https://www.instagram.com/hristy_life)\n" +
						"📸 Если захочешь, поделись этим фото в сторис и отметь меня — с удовольствием сделаю репост!\n\n" +
						"🎁 А если отметишь меня в сторис, жди маленький сюрприз! 😉\n\n" +
						"💖 Спасибо за участие в квесте! Надеюсь, тебе понравилось. До новых встреч!",
					WrongKind: "❌ Это фото-задание! Пожалуйста, отправь снимок.",
				},
				domain.LangEN: {
					Prompt: "📸 Task 10\n" +
						"Capture the moment that touches your heart,\n" +
						"Where the city greets you with warmth from the start.\n" +
						"Let the atmosphere stay in your frame,\n" +
						"Just as you’ll cherish it, always the same.",
					Success: "✅ A wonderful photo of Subotica!\n\n" +
						"✨ I'd be happy if you follow me on Instagram: [@hristy_life](https://www.instagram.com/hristy_life)\n" +
						"📸 If you want, share this photo in your story and tag me — I'll gladly repost it!\n\n" +
						"🎁 And if you tag me in your story, expect a little surprise! 😉\n\n" +
						"💖 Thank you for participating in the quest! Hope you enjoyed it. See you next time!",
					WrongKind: "❌ This is a photo task! Please send a picture.",
				},
			},
		},
	}
}

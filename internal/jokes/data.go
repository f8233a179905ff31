package jokes

import "github.com/sonyjtp/joke-bot/internal/models"

var defaultEntries = map[models.Language]map[models.Category][]string{
	models.LanguageEN: {
		models.CategoryNeutral: {
			"Why do programmers prefer dark mode? Because light attracts bugs.",
			"There are only 10 kinds of people: those who understand binary and those who don't.",
			"A SQL query walks into a bar, goes up to two tables and asks: may I join you?",
			"I would tell you a UDP joke, but you might not get it.",
			"It works on my machine. Then we ship your machine.",
			"A programmer's partner says: go to the store and buy a loaf of bread. If they have eggs, buy a dozen. The programmer comes home with twelve loaves.",
			"Why did the developer go broke? Because they used up all their cache.",
			"Debugging: being the detective in a crime movie where you are also the murderer.",
		},
		models.CategoryChuck: {
			"Chuck Norris writes code that optimizes itself.",
			"Chuck Norris doesn't need garbage collection. Memory frees itself out of respect.",
			"Chuck Norris can unit test an entire application with a single assert.",
			"Chuck Norris's keyboard has no escape key. Nothing escapes Chuck Norris.",
			"All arrays Chuck Norris declares are of infinite size, because Chuck Norris knows no bounds.",
			"Chuck Norris resolves merge conflicts by staring at the repository.",
		},
	},
	models.LanguageDE: {
		models.CategoryNeutral: {
			"Warum mögen Programmierer den Dunkelmodus? Weil Licht Käfer anzieht.",
			"Treffen sich zwei Zeiger auf dem Stack. Sagt der eine: du bist doch gar nicht von hier.",
			"Ein SQL-Statement geht in eine Bar, sieht zwei Tabellen und fragt: darf ich mich zu euch joinen?",
			"Es gibt nur 10 Arten von Menschen: die, die Binär verstehen, und die anderen.",
		},
		models.CategoryChuck: {
			"Chuck Norris braucht keine Garbage Collection. Der Speicher räumt sich aus Respekt selbst auf.",
			"Chuck Norris kompiliert Code durch Anschauen.",
			"Chuck Norris löst Merge-Konflikte mit einem Blick.",
		},
	},
	models.LanguageES: {
		models.CategoryNeutral: {
			"¿Por qué los programadores prefieren el modo oscuro? Porque la luz atrae a los bugs.",
			"Una consulta SQL entra en un bar, se acerca a dos tablas y pregunta: ¿puedo hacer join?",
			"Solo hay 10 tipos de personas: las que entienden binario y las que no.",
			"Funciona en mi máquina. Entonces enviamos tu máquina.",
		},
		models.CategoryChuck: {
			"Chuck Norris no necesita recolector de basura. La memoria se libera sola por respeto.",
			"Chuck Norris compila el código con la mirada.",
			"Chuck Norris resuelve los conflictos de merge mirando el repositorio.",
		},
	},
}

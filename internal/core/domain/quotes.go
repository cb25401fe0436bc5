package domain

// Quotes shown on the weekly view, picked by hour of day.
var Quotes = []string{
	"Believe you can and you're halfway there.",
	"Your only limit is you.",
	"The only way to do great work is to love what you do.",
	"Don't watch the clock; do what it does. Keep going.",
	"The future depends on what you do today.",
	"It always seems impossible until it is done.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"You don't have to be great to start, but you have to start to be great.",
	"The secret of getting ahead is getting started.",
	"Dream big and dare to fail.",
	"Act as if what you do makes a difference. It does.",
	"Success is not final, failure is not fatal: it is the courage to continue that counts.",
	"What you get by achieving your goals is not as important as what you become by achieving your goals.",
	"Discipline is doing what needs to be done, even if you don't want to do it.",
	"Motivation is what gets you started. Habit is what keeps you going.",
	"You are what you repeatedly do. Excellence, then, is not an act, but a habit.",
	"Small daily improvements over time lead to stunning results.",
	"Don't wish it were easier. Wish you were better.",
	"The difference between who you are and who you want to be is what you do.",
	"Fall seven times, stand up eight.",
	"Your habits decide your future.",
	"Focus on the process, not the perfection.",
	"One day or day one. You decide.",
	"Consistency is the key to success.",
}

// QuoteForHour picks the quote for a given hour of day.
func QuoteForHour(hour int) string {
	if hour < 0 {
		hour = -hour
	}
	return Quotes[hour%len(Quotes)]
}

package game

// Sentences is the fixed list of affirmations a running game draws from.
// Static content, not user data.
var Sentences = []string{
	"I am capable of learning anything I set my mind to.",
	"Every day I am becoming a better version of myself.",
	"I choose to focus on what I can control.",
	"Small steps every day lead to big changes.",
	"I am grateful for the people who support me.",
	"Challenges help me grow stronger and wiser.",
	"I deserve rest as much as I deserve success.",
	"My effort today builds the life I want tomorrow.",
	"I treat myself with the same kindness I give others.",
	"Progress matters more than perfection.",
}

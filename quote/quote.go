// Package quote holds the quote page's canned text and its picker.
package quote

// List is the rotation shown on the quote page.
var List = [...]string{
	"The best way to predict the future is to invent it.",
	"Simplicity is the ultimate sophistication.",
	"Make it work, make it right, make it fast.",
	"Programs must be written for people to read, and only incidentally for machines to execute.",
	"Premature optimization is the root of all evil.",
	"The only way to go fast is to go well.",
	"Talk is cheap. Show me the code.",
	"First, solve the problem. Then, write the code.",
	"Deleted code is debugged code.",
	"A ship in harbor is safe, but that is not what ships are built for.",
	"What we think, we become.",
	"Well begun is half done.",
	"It always seems impossible until it is done.",
	"Action is the foundational key to all success.",
	"Quality is not an act, it is a habit.",
	"The journey of a thousand miles begins with one step.",
	"Do what you can, with what you have, where you are.",
	"Whether you think you can or you think you can't, you're right.",
	"Everything should be made as simple as possible, but not simpler.",
	"If you want to go fast, go alone. If you want to go far, go together.",
	"The obstacle is the way.",
	"Fall seven times, stand up eight.",
	"No wind favors he who has no destined port.",
	"Fortune favors the prepared mind.",
	"The secret of getting ahead is getting started.",
	"Perfection is achieved not when there is nothing more to add, but when there is nothing left to take away.",
	"Amateurs sit and wait for inspiration; the rest of us just get up and go to work.",
	"He who has a why to live can bear almost any how.",
}

// Pick returns a pseudo-random quote and the advanced RNG state.
func Pick(rng uint32) (string, uint32) {
	rng = xorshift32(rng)
	return List[rng%uint32(len(List))], rng
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

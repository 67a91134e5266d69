package domain

type Sigil struct {
	ID    string
	Glyph string
	Line  string
}

var sigils = []Sigil{
	{ID: "eye", Glyph: "◉", Line: "You are being watched by the version of you who already made it."},
	{ID: "spiral", Glyph: "@", Line: "Every loop you repeat is a door you have not opened yet."},
	{ID: "key", Glyph: "⚷", Line: "The lock was never on the door. It was on the wish."},
	{ID: "flame", Glyph: "♨", Line: "What you avoid today is the fuel you will need tomorrow."},
	{ID: "crescent", Glyph: "☾", Line: "Nothing is late. Some things are simply still arriving."},
}

// Sigils returns the fixed shock sigil set in display order.
func Sigils() []Sigil {
	return append([]Sigil(nil), sigils...)
}

func SigilByID(id string) (Sigil, bool) {
	for _, s := range sigils {
		if s.ID == id {
			return s, true
		}
	}
	return Sigil{}, false
}

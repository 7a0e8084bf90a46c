package bidding

// nameMask hides everything between the first and last character of a display name.
const nameMask = "******"

// RedactName returns the display form of a bidder's name: first character,
// fixed mask, last character. "Alexandra" becomes "A******a". Works on runes so
// multi-byte names are not split mid-character.
func RedactName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return nameMask
	}
	return string(runes[0]) + nameMask + string(runes[len(runes)-1])
}

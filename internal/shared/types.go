package shared

// Genre is the category taxonomy shared by artists, authors, articles and events.
type Genre string

const (
	GenreCountry      Genre = "country"
	GenreHardcoreRock Genre = "hardcore_rock"
	GenreHipHopRB     Genre = "hiphop_rb"
	GenreEDM          Genre = "edm"
	GenreOther        Genre = "other"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreCountry, GenreHardcoreRock, GenreHipHopRB, GenreEDM, GenreOther:
		return true
	}
	return false
}

// GenreValues returns the enum as interface values, for ozzo validation.In rules.
func GenreValues() []interface{} {
	return []interface{}{
		string(GenreCountry),
		string(GenreHardcoreRock),
		string(GenreHipHopRB),
		string(GenreEDM),
		string(GenreOther),
	}
}

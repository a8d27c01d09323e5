package model

// Movie carries the descriptive fields shared by every projection of a
// film served by the API.  Instances are read-only snapshots decoded from
// documents in the external store; nothing in this process mutates them
// after decoding.
//
// Fields:
//  ID            – stable identifier, identical across days and collections.
//  Title         – French release title.
//  OriginalTitle – original-language title (may be empty).
//  Directors     – director names as a single display string.
//  Year          – release year as stored upstream (string on the wire).
//  Duration      – runtime display string (may be empty).
//  Tags          – editorial tags attached upstream.
//  Review        – HTML body of the site's review, when one exists.
//  ReviewDate    – day-key of the review's publication, empty if unreviewed.
type Movie struct {
	ID            string   `json:"id" bson:"id"`
	Title         string   `json:"title" bson:"title"`
	OriginalTitle string   `json:"original_title,omitempty" bson:"original_title,omitempty"`
	Directors     string   `json:"directors" bson:"directors"`
	Year          string   `json:"year" bson:"year"`
	Duration      string   `json:"duration,omitempty" bson:"duration,omitempty"`
	Tags          []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Review        string   `json:"review,omitempty" bson:"review,omitempty"`
	ReviewDate    string   `json:"review_date,omitempty" bson:"review_date,omitempty"`
}

// Screening is a single showtime inside one theater.  Time is a fractional
// hour (19.5 means 19h30) and is compared numerically; Notes carries
// free-text annotations such as "VOSTF" or a Q&A mention.
type Screening struct {
	Time  float64 `json:"time" bson:"time"`
	Notes string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ShowtimesTheater groups one movie's screenings in one theater for one
// day.  CleanName is the canonical, pre-normalized identifier used as the
// de-duplication key; Name is what gets displayed.
type ShowtimesTheater struct {
	Name       string      `json:"name" bson:"name"`
	CleanName  string      `json:"clean_name" bson:"clean_name"`
	Zipcode    string      `json:"zipcode" bson:"zipcode"`
	Screenings []Screening `json:"screenings" bson:"screenings"`
}

// MovieWithScreeningsOneDay is a movie plus its theater list for exactly
// one calendar day.  The wire field name showtimes_theater matches the
// store documents.
type MovieWithScreeningsOneDay struct {
	Movie             `bson:",inline"`
	ShowtimesTheaters []ShowtimesTheater `json:"showtimes_theater" bson:"showtimes_theater"`
}

// MovieWithScreeningsSeveralDays is a movie plus a day-key → theater list
// mapping covering one movie week.  A day on which the movie does not show
// has no key at all, never an empty list.
type MovieWithScreeningsSeveralDays struct {
	Movie          `bson:",inline"`
	ShowtimesByDay map[string][]ShowtimesTheater `json:"showtimes_by_day" bson:"showtimes_by_day"`
}

// SearchMovie is the reduced index record used by the search ranker.  It
// carries no screenings; RelevanceScore is an opaque ranking signal
// computed upstream and only compared, never interpreted.
type SearchMovie struct {
	ID             string  `json:"id" bson:"id"`
	Title          string  `json:"title" bson:"title"`
	OriginalTitle  string  `json:"original_title,omitempty" bson:"original_title,omitempty"`
	Directors      string  `json:"directors" bson:"directors"`
	Year           string  `json:"year" bson:"year"`
	RelevanceScore float64 `json:"relevance_score" bson:"relevance_score"`
}

// ReducedMovie is the compressed on-the-wire form stored in the
// website-movie-list collection, with one-letter field names to keep the
// documents small.  Expand expands it into a SearchMovie.
type ReducedMovie struct {
	I string  `bson:"i"` // id
	D string  `bson:"d"` // directors
	T string  `bson:"t"` // title
	Y string  `bson:"y"` // year
	O string  `bson:"o,omitempty"` // original_title
	R float64 `bson:"r"` // relevance_score
}

// Expand converts the reduced record into its full SearchMovie form.
func (r ReducedMovie) Expand() SearchMovie {
	return SearchMovie{
		ID:             r.I,
		Directors:      r.D,
		Title:          r.T,
		Year:           r.Y,
		OriginalTitle:  r.O,
		RelevanceScore: r.R,
	}
}

// Review is one entry of the all-reviews document, enough to render the
// reviewed-movies list and the previous/next navigation on archive pages.
type Review struct {
	ID         string `json:"id" bson:"id"`
	Title      string `json:"title" bson:"title"`
	Directors  string `json:"directors" bson:"directors"`
	Year       string `json:"year" bson:"year"`
	ReviewDate string `json:"review_date" bson:"review_date"`
}

// DayScreeningsDoc is the shape of one per-day document in the screenings
// collections: a date key plus the movies showing on that date.  One day
// may span several documents; their movie lists are concatenated, never
// merged by id, when a day is read.
type DayScreeningsDoc struct {
	Date   string                      `bson:"date"`
	Movies []MovieWithScreeningsOneDay `bson:"movies"`
}

package quiz

const (
	QuestionsPerQuiz   = 5
	OptionsPerQuestion = 4
)

type Question struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correct_answer"`
}

type Quiz struct {
	Questions []Question `json:"questions"`
}

func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

// Topic binds an HTTP path to the subject the model is asked about.
type Topic struct {
	Path string
	Name string
}

var Topics = []Topic{
	{Path: "/deforestation", Name: "deforestation"},
	{Path: "/climate", Name: "Climate Change"},
	{Path: "/Social", Name: "Social displacement"},
	{Path: "/EWE", Name: "Extreme Weather"},
	{Path: "/bio_loss", Name: "Biodiversity loss"},
	{Path: "/air", Name: "Air Pollution"},
	{Path: "/EcoEffect", Name: "Economic effects"},
}

package skills

// DefaultSynonyms maps canonical skill names to the alternate surface forms
// resumes commonly use. One process-wide table shared by profile extraction
// and required-skill derivation so the two can never drift. Entries only take
// effect when the canonical form exists in the loaded taxonomy.
var DefaultSynonyms = map[string][]string{
	"power bi":        {"powerbi", "ms power bi"},
	"scikit-learn":    {"sklearn", "scikit learn"},
	"pytorch":         {"py torch"},
	"tensorflow":      {"tf"},
	"mysql":           {"my sql"},
	"postgresql":      {"postgres", "postgre sql"},
	"huggingface":     {"hugging face"},
	"computer vision": {"cv"},
	"nlp":             {"natural language processing"},
	"rest api":        {"restful api", "rest apis"},
	"fastapi":         {"fast api"},
	"docker":          {"container", "containers", "containerization"},
	"kubernetes":      {"k8s"},
	"mlops":           {"ml ops"},
	"etl":             {"extract transform load"},
	"llm":             {"large language model", "large language models"},
	"rag":             {"retrieval augmented generation"},
	"eda":             {"exploratory data analysis", "data analysis", "data cleaning"},
	"aws":             {"amazon web services"},
	"gcp":             {"google cloud", "google cloud platform"},
	"opencv":          {"open cv"},
}

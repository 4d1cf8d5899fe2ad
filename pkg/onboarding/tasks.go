package onboarding

// TaskType — закрытый набор видов задач чек-листа.
type TaskType string

const (
	TaskDocumentReview TaskType = "DOCUMENT_REVIEW"
	TaskCourseUpload   TaskType = "COURSE_UPLOAD"
	TaskSignature      TaskType = "SIGNATURE"
)

// TaskSpec — каноническое описание одной задачи чек-листа.
type TaskSpec struct {
	Type        TaskType
	Title       string
	Description string
	Link        string
	SortOrder   int
}

var documentSpecs = []TaskSpec{
	{
		Type:        TaskDocumentReview,
		Title:       "Правила внутреннего распорядка",
		Description: "Ознакомьтесь с правилами внутреннего распорядка компании.",
		Link:        "https://docs.staffing.local/onboarding/house-rules",
	},
	{
		Type:        TaskDocumentReview,
		Title:       "Политика информационной безопасности",
		Description: "Изучите политику работы с данными и служебными системами.",
		Link:        "https://docs.staffing.local/onboarding/security-policy",
	},
	{
		Type:        TaskDocumentReview,
		Title:       "Инструктаж по охране труда",
		Description: "Пройдите вводный инструктаж по охране труда.",
		Link:        "https://docs.staffing.local/onboarding/safety-briefing",
	},
	{
		Type:        TaskDocumentReview,
		Title:       "Памятка о коммерческой тайне",
		Description: "Ознакомьтесь с перечнем сведений, составляющих коммерческую тайну.",
		Link:        "https://docs.staffing.local/onboarding/nda-memo",
	},
	{
		Type:        TaskDocumentReview,
		Title:       "Регламент коммуникаций",
		Description: "Изучите принятые в компании каналы и правила коммуникации.",
		Link:        "https://docs.staffing.local/onboarding/communications",
	},
}

var courseSpec = TaskSpec{
	Type:        TaskCourseUpload,
	Title:       "Сертификат вводного курса",
	Description: "Пройдите вводный курс и загрузите сертификат о прохождении.",
	Link:        "https://learn.staffing.local/intro-course",
}

var signatureSpec = TaskSpec{
	Type:        TaskSignature,
	Title:       "Подписание листа ознакомления",
	Description: "Подпишите лист ознакомления со всеми документами выше.",
}

// CanonicalTasks — чистая функция политики чек-листа. Порядок фиксирован:
// пять ознакомительных задач, затем загрузка сертификата курса (только если
// курс ещё не пройден), затем подпись. SortOrder плотный, с единицы, поэтому
// позиция подписи зависит от наличия задачи про курс (6-я или 7-я).
func CanonicalTasks(courseCompleted bool) []TaskSpec {
	specs := make([]TaskSpec, 0, len(documentSpecs)+2)
	specs = append(specs, documentSpecs...)
	if !courseCompleted {
		specs = append(specs, courseSpec)
	}
	specs = append(specs, signatureSpec)
	for i := range specs {
		specs[i].SortOrder = i + 1
	}
	return specs
}

package models

// AppData is the full kiosk content document served to displays. The
// baseline is loaded once at startup; admin edits are persisted as an
// override merged over it.
type AppData struct {
    TrainingCatalog []TrainingProgram `json:"trainingCatalog"`
    Events          []EventItem       `json:"events"`
    QuizQuestions   []QuizQuestion    `json:"quizQuestions"`
    JobProfiles     []JobProfile      `json:"jobProfiles"`
    NewsItems       []NewsItem        `json:"newsItems"`
}

type TrainingProgram struct {
    ID       string `json:"id"`
    Title    string `json:"title"`
    Level    string `json:"level"`
    Duration string `json:"duration"`
    Type     string `json:"type"`     // Alternance | Continu | Initiale
    Category string `json:"category"` // Transport | Logistique | Sécurité
}

type EventItem struct {
    ID       string `json:"id"`
    Title    string `json:"title"`
    Date     string `json:"date"`
    Location string `json:"location"`
    Type     string `json:"type"` // JPO | Job Dating | Information
}

type QuizQuestion struct {
    ID       int      `json:"id"`
    Question string   `json:"question"`
    Options  []string `json:"options"`
    // Profiles holds the user profile suggested by each option, index-aligned
    // with Options. Optional in the baseline document.
    Profiles []string `json:"profiles,omitempty"`
}

type JobProfile struct {
    ID            string   `json:"id"`
    Title         string   `json:"title"`
    Category      string   `json:"category"` // Transport | Logistique | Voyageurs
    Description   string   `json:"description"`
    Missions      []string `json:"missions"`
    Skills        []string `json:"skills"`
    TrainingPaths []string `json:"trainingPaths"`
}

type NewsItem struct {
    ID        string `json:"id"`
    Type      string `json:"type"` // NEWS | PROMOTION
    Title     string `json:"title"`
    Summary   string `json:"summary"`
    Body      string `json:"body"`
    StartDate string `json:"startDate,omitempty"`
    EndDate   string `json:"endDate,omitempty"`
    Image     string `json:"image,omitempty"`
    Priority  int    `json:"priority"` // 1 = featured, 2 = normal
    CtaLabel  string `json:"ctaLabel"`
    CtaTarget string `json:"ctaTarget,omitempty"` // screen identifier
}

package content

import "github.com/aftral/kiosk_backend_v1/internal/models"

// DefaultBaseline is the seed content document written on first run.
func DefaultBaseline() models.AppData {
    return models.AppData{
        TrainingCatalog: []models.TrainingProgram{
            {ID: "tp-1", Title: "Titre Professionnel Conducteur Routier de Marchandises", Level: "Niveau 3", Duration: "3 mois", Type: "Continu", Category: "Transport"},
            {ID: "tp-2", Title: "BTS Gestion des Transports et Logistique Associée", Level: "Niveau 5", Duration: "24 mois", Type: "Alternance", Category: "Transport"},
            {ID: "tp-3", Title: "Titre Professionnel Cariste d'Entrepôt", Level: "Niveau 3", Duration: "2 mois", Type: "Continu", Category: "Logistique"},
            {ID: "tp-4", Title: "Bac Pro Logistique", Level: "Niveau 4", Duration: "36 mois", Type: "Initiale", Category: "Logistique"},
            {ID: "tp-5", Title: "Responsable Production Transport Logistique", Level: "Niveau 6", Duration: "12 mois", Type: "Alternance", Category: "Logistique"},
            {ID: "tp-6", Title: "Formation ADR Transport de Matières Dangereuses", Level: "Certificat", Duration: "1 semaine", Type: "Continu", Category: "Sécurité"},
        },
        Events: []models.EventItem{
            {ID: "ev-1", Title: "Journée Portes Ouvertes", Date: "2025-03-15", Location: "Campus principal", Type: "JPO"},
            {ID: "ev-2", Title: "Job Dating Transport & Logistique", Date: "2025-04-02", Location: "Hall B", Type: "Job Dating"},
            {ID: "ev-3", Title: "Réunion d'information alternance", Date: "2025-04-18", Location: "Salle 104", Type: "Information"},
            {ID: "ev-4", Title: "Journée Portes Ouvertes d'été", Date: "2025-06-21", Location: "Campus principal", Type: "JPO"},
        },
        QuizQuestions: []models.QuizQuestion{
            {
                ID:       1,
                Question: "Qu'est-ce qui vous attire le plus ?",
                Options:  []string{"Conduire et voyager", "Organiser et planifier", "Manager une équipe", "Découvrir les métiers"},
                Profiles: []string{"STUDENT", "EMPLOYEE", "COMPANY", "PARENT"},
            },
            {
                ID:       2,
                Question: "Quel environnement de travail préférez-vous ?",
                Options:  []string{"Sur la route", "En entrepôt", "Au bureau", "Au contact du public"},
                Profiles: []string{"STUDENT", "EMPLOYEE", "COMPANY", "PARENT"},
            },
            {
                ID:       3,
                Question: "Quel est votre projet ?",
                Options:  []string{"Première formation", "Reconversion", "Former mes salariés", "Orienter mon enfant"},
                Profiles: []string{"STUDENT", "EMPLOYEE", "COMPANY", "PARENT"},
            },
        },
        JobProfiles: []models.JobProfile{
            {
                ID: "job-1", Title: "Conducteur routier", Category: "Transport",
                Description: "Transporte des marchandises sur courtes ou longues distances.",
                Missions:    []string{"Préparer les tournées", "Conduire en sécurité", "Gérer les documents de transport"},
                Skills:      []string{"Rigueur", "Autonomie", "Sens du service"},
                TrainingPaths: []string{"Titre Professionnel Conducteur Routier de Marchandises"},
            },
            {
                ID: "job-2", Title: "Agent logistique", Category: "Logistique",
                Description: "Réceptionne, stocke et prépare les commandes en entrepôt.",
                Missions:    []string{"Réceptionner les marchandises", "Préparer les commandes", "Conduire des chariots"},
                Skills:      []string{"Organisation", "Esprit d'équipe", "Réactivité"},
                TrainingPaths: []string{"Titre Professionnel Cariste d'Entrepôt", "Bac Pro Logistique"},
            },
            {
                ID: "job-3", Title: "Conducteur de voyageurs", Category: "Voyageurs",
                Description: "Assure le transport de personnes en toute sécurité.",
                Missions:    []string{"Accueillir les passagers", "Conduire en ville ou interurbain", "Vendre des titres de transport"},
                Skills:      []string{"Ponctualité", "Relationnel", "Sang-froid"},
                TrainingPaths: []string{"Titre Professionnel Conducteur de Transport en Commun"},
            },
            {
                ID: "job-4", Title: "Responsable d'exploitation", Category: "Transport",
                Description: "Pilote l'activité quotidienne d'un site de transport.",
                Missions:    []string{"Planifier les tournées", "Encadrer les conducteurs", "Suivre les indicateurs"},
                Skills:      []string{"Management", "Analyse", "Décision"},
                TrainingPaths: []string{"Responsable Production Transport Logistique"},
            },
        },
        NewsItems: []models.NewsItem{
            {
                ID: "news-1", Type: "NEWS", Title: "Nouvelle session CAP Conducteur",
                Summary: "Ouverture des inscriptions pour la rentrée de septembre.",
                Body:    "Les inscriptions pour la prochaine session sont ouvertes. Renseignez-vous à l'accueil.",
                Priority: 1, CtaLabel: "Voir le catalogue", CtaTarget: "CATALOG",
            },
            {
                ID: "news-2", Type: "PROMOTION", Title: "Financement CPF",
                Summary: "Vos formations transport finançables via le CPF.",
                Body:    "La plupart de nos titres professionnels sont éligibles au Compte Personnel de Formation.",
                Priority: 2, CtaLabel: "En savoir plus", CtaTarget: "CONTACT",
            },
            {
                ID: "news-3", Type: "NEWS", Title: "Prochaine Journée Portes Ouvertes",
                Summary: "Venez découvrir le campus le 15 mars.",
                Body:    "Visites guidées, démonstrations sur simulateur et rencontres avec les formateurs.",
                Priority: 2, CtaLabel: "Voir l'agenda", CtaTarget: "EVENTS",
            },
        },
    }
}

package kiosk

// Screen identifies one view on the kiosk display. The set is fixed at
// build time; admin screens share the same navigation state as public ones.
type Screen string

const (
    ScreenHome      Screen = "HOME"
    ScreenCatalog   Screen = "CATALOG"
    ScreenMap       Screen = "MAP"
    ScreenQuiz      Screen = "QUIZ"
    ScreenEvents    Screen = "EVENTS"
    ScreenJobSheets Screen = "JOB_SHEETS"
    ScreenContact   Screen = "CONTACT"
    ScreenNews      Screen = "NEWS"

    ScreenAdminDashboard Screen = "ADMIN_DASHBOARD"
    ScreenAdminNews      Screen = "ADMIN_NEWS"
    ScreenAdminSettings  Screen = "ADMIN_SETTINGS"
)

var allScreens = map[Screen]struct{}{
    ScreenHome:           {},
    ScreenCatalog:        {},
    ScreenMap:            {},
    ScreenQuiz:           {},
    ScreenEvents:         {},
    ScreenJobSheets:      {},
    ScreenContact:        {},
    ScreenNews:           {},
    ScreenAdminDashboard: {},
    ScreenAdminNews:      {},
    ScreenAdminSettings:  {},
}

func (s Screen) Valid() bool {
    _, ok := allScreens[s]
    return ok
}

// Admin reports whether the screen belongs to the PIN-gated admin tree.
func (s Screen) Admin() bool {
    switch s {
    case ScreenAdminDashboard, ScreenAdminNews, ScreenAdminSettings:
        return true
    }
    return false
}

// UserProfile is the visitor profile chosen on the home screen. Empty means
// no profile selected.
type UserProfile string

const (
    ProfileNone     UserProfile = ""
    ProfileStudent  UserProfile = "STUDENT"
    ProfileParent   UserProfile = "PARENT"
    ProfileEmployee UserProfile = "EMPLOYEE"
    ProfileCompany  UserProfile = "COMPANY"
)

func (p UserProfile) Valid() bool {
    switch p {
    case ProfileStudent, ProfileParent, ProfileEmployee, ProfileCompany:
        return true
    }
    return false
}

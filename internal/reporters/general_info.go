package reporters

import (
	"time"

	"github.com/google/uuid"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// GeneralInfoTitle is the title of the general information chapter.
const GeneralInfoTitle = "Information"

// generalInfoNote is shown at the end of the general information chapter.
const generalInfoNote = "This report describes the state of the application at the time it was generated. " +
	"Attach it when contacting support."

// generalInfo reports who generated the report and when.
type generalInfo struct {
	appName    string
	appVersion string
	now        func() time.Time
	newID      func() string
}

func newGeneralInfo(deps Dependencies) *generalInfo {
	return &generalInfo{
		appName:    deps.AppName,
		appVersion: deps.AppVersion,
		now:        deps.Now,
		newID:      uuid.NewString,
	}
}

// Name implements report.Named.
func (r *generalInfo) Name() string {
	return GeneralInfoTitle
}

// Report implements report.Reporter.
func (r *generalInfo) Report() model.Chapter {
	body := model.Table{}.
		Add("App name", r.appName).
		Add("App version", r.appVersion).
		Add("Report ID", r.newID()).
		Add("Generated at", r.now().UTC().Format(time.RFC3339)).
		Add("Note", generalInfoNote)

	return model.NewChapter(GeneralInfoTitle, body)
}

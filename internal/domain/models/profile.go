package models

import "time"

// Preferences are the gardener's notification switches.
type Preferences struct {
	Notifications bool `json:"notifications"`
	WeatherAlerts bool `json:"weatherAlerts"`
	TaskReminders bool `json:"taskReminders"`
}

// PreferencesPatch carries a partial preference update.
type PreferencesPatch struct {
	Notifications *bool `json:"notifications"`
	WeatherAlerts *bool `json:"weatherAlerts"`
	TaskReminders *bool `json:"taskReminders"`
}

// Apply merges the patch into p.
func (patch PreferencesPatch) Apply(p Preferences) Preferences {
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	if patch.WeatherAlerts != nil {
		p.WeatherAlerts = *patch.WeatherAlerts
	}
	if patch.TaskReminders != nil {
		p.TaskReminders = *patch.TaskReminders
	}
	return p
}

// Profile is the single gardener using the application.
type Profile struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	Experience  string      `json:"experience"`
	Bio         string      `json:"bio"`
	Avatar      *string     `json:"avatar"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
}

// Clone returns an independent copy of the profile.
func (p Profile) Clone() Profile {
	if p.Avatar != nil {
		a := *p.Avatar
		p.Avatar = &a
	}
	return p
}

// ProfilePatch carries a partial profile update.
type ProfilePatch struct {
	Name        *string           `json:"name"`
	Email       *string           `json:"email"`
	Phone       *string           `json:"phone"`
	Location    *string           `json:"location"`
	Experience  *string           `json:"experience"`
	Bio         *string           `json:"bio"`
	Preferences *PreferencesPatch `json:"preferences"`
}

// Apply replaces every field set in the patch on a copy of p.
func (patch ProfilePatch) Apply(p Profile) Profile {
	p = p.Clone()
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Preferences != nil {
		p.Preferences = patch.Preferences.Apply(p.Preferences)
	}
	return p
}

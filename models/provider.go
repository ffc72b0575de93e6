package models

import "time"

const (
	ProviderTypePriest     = "priest"
	ProviderTypeAstrologer = "astrologer"

	ProfileStatusApproved = "approved"
	ProfileStatusPending  = "pending_verification"
	ProfileStatusRejected = "rejected"
	ProfileStatusDisabled = "suspended"
)

// TimeWindow is an hour range inside a day, end exclusive.
type TimeWindow struct {
	StartHour int `bson:"start_hour" json:"start_hour"`
	EndHour   int `bson:"end_hour" json:"end_hour"`
}

// DaySchedule is one weekday entry of a provider's recurring availability.
type DaySchedule struct {
	Day         string       `bson:"day" json:"day"` // "monday".."sunday"
	IsAvailable bool         `bson:"is_available" json:"is_available"`
	TimeSlots   []TimeWindow `bson:"time_slots" json:"time_slots"`
}

// UnavailableDate is a blackout date overriding the weekly schedule.
type UnavailableDate struct {
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

type TempleAffiliation struct {
	TempleID            string `bson:"temple_id" json:"temple_id"`
	TempleName          string `bson:"temple_name,omitempty" json:"temple_name,omitempty"`
	AcceptsTempleVisits bool   `bson:"accepts_temple_visits" json:"accepts_temple_visits"`
}

// ProviderProfile is a priest or astrologer as stored by onboarding and
// moderation. The allocation core only ever reads it.
type ProviderProfile struct {
	ID                  string              `bson:"id" json:"id"`
	UserID              string              `bson:"user_id,omitempty" json:"user_id,omitempty"`
	DisplayName         string              `bson:"display_name" json:"display_name"`
	ProfileImage        string              `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	ProviderType        string              `bson:"provider_type" json:"provider_type"`
	ProfileStatus       string              `bson:"profile_status" json:"profile_status"`
	IsDeleted           bool                `bson:"is_deleted" json:"is_deleted"`
	IsAvailableOnline   bool                `bson:"is_available_online" json:"is_available_online"`
	IsAvailableOffline  bool                `bson:"is_available_offline" json:"is_available_offline"`
	WeeklySchedule      []DaySchedule       `bson:"weekly_schedule,omitempty" json:"weekly_schedule,omitempty"`
	UnavailableDates    []UnavailableDate   `bson:"unavailable_dates,omitempty" json:"unavailable_dates,omitempty"`
	AssociatedTemples   []TempleAffiliation `bson:"associated_temples,omitempty" json:"associated_temples,omitempty"`
	City                string              `bson:"city,omitempty" json:"city,omitempty"`
	Location            *GeoPoint           `bson:"location,omitempty" json:"location,omitempty"`
	OutstationAvailable bool                `bson:"outstation_available" json:"outstation_available"`
	RatingAverage       *float64            `bson:"rating_average,omitempty" json:"rating_average,omitempty"`
	TotalConsultations  int                 `bson:"total_consultations" json:"total_consultations"`
	Specializations     []string            `bson:"specializations,omitempty" json:"specializations,omitempty"`
	Languages           []string            `bson:"languages,omitempty" json:"languages,omitempty"`
	YearsOfExperience   int                 `bson:"years_of_experience" json:"years_of_experience"`
	IsVerified          bool                `bson:"is_verified" json:"is_verified"`
	ScreenTimeScore     float64             `bson:"screen_time_score" json:"screen_time_score"`
	CreatedAt           time.Time           `bson:"created_at" json:"created_at,omitzero"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updated_at,omitzero"`
}

// Rating returns the rating average, or fallback when the provider has none.
func (p *ProviderProfile) Rating(fallback float64) float64 {
	if p.RatingAverage == nil {
		return fallback
	}
	return *p.RatingAverage
}

// PriestSummary is the public view of a provider returned to the UI.
type PriestSummary struct {
	ID                 string   `json:"id"`
	DisplayName        string   `json:"display_name"`
	ProfileImage       string   `json:"profile_image,omitempty"`
	City               string   `json:"city,omitempty"`
	RatingAverage      *float64 `json:"rating_average,omitempty"`
	TotalConsultations int      `json:"total_consultations"`
	YearsOfExperience  int      `json:"years_of_experience"`
	Languages          []string `json:"languages,omitempty"`
	Specializations    []string `json:"specializations,omitempty"`
	IsVerified         bool     `json:"is_verified"`
}

func (p *ProviderProfile) Summary() PriestSummary {
	return PriestSummary{
		ID:                 p.ID,
		DisplayName:        p.DisplayName,
		ProfileImage:       p.ProfileImage,
		City:               p.City,
		RatingAverage:      p.RatingAverage,
		TotalConsultations: p.TotalConsultations,
		YearsOfExperience:  p.YearsOfExperience,
		Languages:          p.Languages,
		Specializations:    p.Specializations,
		IsVerified:         p.IsVerified,
	}
}

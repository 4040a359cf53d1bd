package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID    uuid.UUID
	FullName  string
	AvatarURL *string
	Phone     *string
}

type Lawyer struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BarCouncilID    string
	PhotoURL        *string
	Bio             *string
	ExperienceYears *int
	HourlyRate      int64
	City            string
	Specializations []string
	IsVerified      bool
	Rating          *float64
	ReviewCount     int
	CreatedAt       time.Time

	// Profile nil, если запись в profiles отсутствует.
	Profile *Profile
}

// DisplayName - имя для описания платежа и карточек.
func (l *Lawyer) DisplayName() string {
	if l.Profile != nil && l.Profile.FullName != "" {
		return l.Profile.FullName
	}
	return "Lawyer"
}

// RatingValue возвращает рейтинг, отсутствующий рейтинг считается нулём.
func (l *Lawyer) RatingValue() float64 {
	if l.Rating == nil {
		return 0
	}
	return *l.Rating
}

// Photo - собственное фото юриста, иначе аватар профиля.
func (l *Lawyer) Photo() *string {
	if l.PhotoURL != nil && *l.PhotoURL != "" {
		return l.PhotoURL
	}
	if l.Profile != nil {
		return l.Profile.AvatarURL
	}
	return nil
}

// IsOwnedBy проверяет, что профиль юриста принадлежит пользователю.
func (l *Lawyer) IsOwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}

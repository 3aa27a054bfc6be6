package classification

import (
	"fmt"

	"gorm.io/gorm"

	"versehub/models"
)

// Principal is the acting identity for a classification: an authenticated
// user or an anonymous device. The constructors are the only way to build
// one, so a row can never carry both identities.
type Principal struct {
	userID   int
	deviceID string
}

func UserPrincipal(userID int) Principal {
	return Principal{userID: userID}
}

func DevicePrincipal(deviceID string) Principal {
	return Principal{deviceID: deviceID}
}

func (p Principal) IsUser() bool {
	return p.userID != 0
}

func (p Principal) IsZero() bool {
	return p.userID == 0 && p.deviceID == ""
}

// Key returns a string that is unique per identity. A user and a device are
// always distinct people for counting purposes, even if they belong to the
// same human.
func (p Principal) Key() string {
	if p.IsUser() {
		return fmt.Sprintf("u:%d", p.userID)
	}
	return "d:" + p.deviceID
}

// scope narrows a verse_classifications query to this principal's rows.
func (p Principal) scope(query *gorm.DB) *gorm.DB {
	if p.IsUser() {
		return query.Where("user_id = ?", p.userID)
	}
	return query.Where("user_id IS NULL AND device_id = ?", p.deviceID)
}

// row builds a pivot row owned by this principal.
func (p Principal) row(verseID, categoryID int) models.VerseClassification {
	classification := models.VerseClassification{
		BibleVerseID: verseID,
		CategoryID:   categoryID,
	}
	if p.IsUser() {
		userID := p.userID
		classification.UserID = &userID
	} else {
		deviceID := p.deviceID
		classification.DeviceID = &deviceID
	}
	return classification
}

func principalKeyFromRow(row models.VerseClassification) string {
	if row.UserID != nil {
		return fmt.Sprintf("u:%d", *row.UserID)
	}
	if row.DeviceID != nil {
		return "d:" + *row.DeviceID
	}
	return ""
}

package reconciliation

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/period"
	"github.com/ledgerbook/backend/internal/types"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
)

const notificationKey = "%d transactions in %s are waiting for reconciliation since the statement of %s"

// Languages are the languages notification messages are available in.
// The first one is the fallback.
var Languages = []language.Tag{language.English, language.German}

func init() {
	_ = message.Set(language.English, notificationKey,
		plural.Selectf(1, "%d",
			"=1", "%[1]d transaction in %[2]s is waiting for reconciliation since the statement of %[3]s",
			"other", "%[1]d transactions in %[2]s are waiting for reconciliation since the statement of %[3]s",
		))

	_ = message.Set(language.German, notificationKey,
		plural.Selectf(1, "%d",
			"=1", "%[1]d Buchung in %[2]s wartet seit dem Abschluss vom %[3]s auf den Abgleich",
			"other", "%[1]d Buchungen in %[2]s warten seit dem Abschluss vom %[3]s auf den Abgleich",
		))
}

// Notification reminds the owner of an account about transactions from
// statement periods that have already closed.
type Notification struct {
	AccountID     uuid.UUID  `json:"accountId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	AccountName   string     `json:"accountName" example:"Credit Card"`
	Count         int64      `json:"count" example:"3"`                                       // Number of transactions waiting for reconciliation
	StatementDate types.Date `json:"statementDate" swaggertype:"string" example:"2026-10-15"` // Closing date of the last statement
	Message       string     `json:"message" example:"3 transactions in Credit Card are waiting for reconciliation since the statement of 2026-10-15"`
}

// Notifications returns a notification for each account of the owner that
// has open transactions dated before its current statement period.
// Deferred transactions are not counted until their deferral ends.
func Notifications(db *gorm.DB, owner uuid.UUID, now time.Time, lang language.Tag) ([]Notification, error) {
	var accounts []models.Account
	err := db.Where(&models.Account{OwnerID: owner}).Order("name").Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	p := message.NewPrinter(lang)
	today := types.DateOf(now)
	notifications := make([]Notification, 0)

	for _, a := range accounts {
		window := period.Statement(a, today)

		var count int64
		err := pending(db, owner, a.ID, window.Start).
			Where("date < ?", window.Start).
			Count(&count).Error
		if err != nil {
			return nil, err
		}

		if count == 0 {
			continue
		}

		notifications = append(notifications, Notification{
			AccountID:     a.ID,
			AccountName:   a.Name,
			Count:         count,
			StatementDate: window.Start,
			Message:       p.Sprintf(notificationKey, count, a.Name, window.Start.String()),
		})
	}

	return notifications, nil
}

package jobs

import (
	"context"
	"time"

	"renthub-backend/internal/domain"
	"renthub-backend/internal/logger"
)

// SendOverdueReminders emails every renter whose active rent is past its
// return deadline
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.rents.ListOverdue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list overdue rents", "error", err)
			return
		}

		sent := 0
		for _, rent := range overdue {
			user, err := jr.users.GetByID(ctx, rent.UserID)
			if err != nil {
				logger.Error("Failed to load renter for reminder",
					"rent_id", rent.ID, "user_id", rent.UserID, "error", err)
				continue
			}

			err = jr.email.SendOverdueReminder(ctx, user.Email, user.FullName(), rent.ItemName, rent.DeadlineReturnDate)
			if err != nil {
				logger.Error("Failed to send overdue reminder",
					"rent_id", rent.ID, "email", user.Email, "error", err)
				continue
			}

			logger.Debug("Sent overdue reminder",
				"rent_id", rent.ID,
				"user_id", rent.UserID,
				"item_name", rent.ItemName,
				"deadline", rent.DeadlineReturnDate)
			sent++
		}

		logger.Info("Sent overdue reminders", "overdue", len(overdue), "sent", sent)
	})
}

// ReportRentActivity logs a daily summary of rent volume by state
func (jr *JobRunner) ReportRentActivity() {
	jr.runWithRecovery("ReportRentActivity", func() {
		ctx := context.Background()

		rents, err := jr.rents.List(ctx)
		if err != nil {
			logger.Error("Failed to list rents for activity report", "error", err)
			return
		}

		active, finished := 0, 0
		for _, rent := range rents {
			switch rent.State {
			case domain.RentStateInUse:
				active++
			case domain.RentStateFinished:
				finished++
			}
		}

		logger.Info("Rent activity", "active", active, "finished", finished, "total", len(rents))
	})
}

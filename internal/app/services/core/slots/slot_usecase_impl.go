package slots

import (
	"context"
	"sync"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type slotUsecase struct {
	ScheduleClient contracts.ScheduleClient
	Log            *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(scheduleClient contracts.ScheduleClient, logger *zap.Logger) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			ScheduleClient: scheduleClient,
			Log:            logger,
		}
	})
	return slotUsecaseInstance
}

// ComputeSlots derives the ordered slot starts for one working day. A slot
// is included iff its start lies strictly before the window end; the last
// slot may therefore extend past the end time. A nil schedule yields no
// slots.
func ComputeSlots(schedule *models.Schedule) []models.TimeSlot {
	if schedule == nil {
		return nil
	}

	startMinutes, err := utils.ClockToMinutes(schedule.StartTime)
	if err != nil {
		return nil
	}
	endMinutes, err := utils.ClockToMinutes(schedule.EndTime)
	if err != nil {
		return nil
	}

	slotDuration := schedule.SlotDuration
	if slotDuration <= 0 {
		slotDuration = constvars.DefaultSlotDurationMinutes
	}

	var slots []models.TimeSlot
	for t := startMinutes; t < endMinutes; t += slotDuration {
		slots = append(slots, models.TimeSlot{
			Start:     utils.MinutesToClock(t),
			Available: true,
		})
	}
	return slots
}

// markBooked flips availability for slots occupied on the given date by an
// appointment that is still PENDING or CONFIRMED. CANCELLED appointments
// release their slot.
func markBooked(slots []models.TimeSlot, appointments []models.Appointment, date string) []models.TimeSlot {
	booked := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.AppointmentDate != date {
			continue
		}
		if appointment.Status != models.AppointmentStatusPending && appointment.Status != models.AppointmentStatusConfirmed {
			continue
		}
		start := appointment.AppointmentStart
		if len(start) > 5 {
			start = start[:5]
		}
		booked[start] = struct{}{}
	}

	for i := range slots {
		if _, ok := booked[slots[i].Start]; ok {
			slots[i].Available = false
		}
	}
	return slots
}

func (uc *slotUsecase) AvailableSlots(ctx context.Context, token, doctorID, date string) (*responses.AvailableSlotsResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.AvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.QueryParamDate, date),
	)

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	schedule, err := uc.ScheduleClient.FindByDoctorID(ctx, token, doctorID)
	if err != nil {
		uc.Log.Error("slotUsecase.AvailableSlots error fetching schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := &responses.AvailableSlotsResult{
		DoctorID: doctorID,
		Date:     date,
	}

	if schedule.WorkingDays != "" && !utils.IsWorkingDay(schedule.WorkingDays, utils.DayAbbreviation(day)) {
		result.Slots = []models.TimeSlot{}
		return result, nil
	}

	slots := ComputeSlots(schedule)
	slots = markBooked(slots, schedule.Appointments, date)
	if slots == nil {
		slots = []models.TimeSlot{}
	}
	result.Slots = slots
	return result, nil
}

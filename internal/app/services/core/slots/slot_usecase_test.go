package slots

import (
	"context"
	"testing"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComputeSlots(t *testing.T) {
	t.Run("generates strictly increasing starts from the window start", func(t *testing.T) {
		schedule := &models.Schedule{StartTime: "09:00", EndTime: "12:00", SlotDuration: 30}

		slots := ComputeSlots(schedule)

		require.Len(t, slots, 6)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.Equal(t, "11:30", slots[len(slots)-1].Start)
		for i := 1; i < len(slots); i++ {
			prev, err := utils.ClockToMinutes(slots[i-1].Start)
			require.NoError(t, err)
			curr, err := utils.ClockToMinutes(slots[i].Start)
			require.NoError(t, err)
			assert.Greater(t, curr, prev)
		}
	})

	t.Run("includes a slot whose end would pass the window end", func(t *testing.T) {
		// 10:30 starts before the 10:45 end even though it finishes after it.
		schedule := &models.Schedule{StartTime: "10:00", EndTime: "10:45", SlotDuration: 30}

		slots := ComputeSlots(schedule)

		require.Len(t, slots, 2)
		assert.Equal(t, "10:30", slots[1].Start)
	})

	t.Run("excludes a slot starting exactly at the window end", func(t *testing.T) {
		schedule := &models.Schedule{StartTime: "09:00", EndTime: "10:00", SlotDuration: 30}

		slots := ComputeSlots(schedule)

		require.Len(t, slots, 2)
		assert.Equal(t, "09:30", slots[1].Start)
	})

	t.Run("defaults the slot duration when unset", func(t *testing.T) {
		schedule := &models.Schedule{StartTime: "09:00", EndTime: "10:00"}

		slots := ComputeSlots(schedule)

		require.Len(t, slots, 2)
	})

	t.Run("nil schedule yields no slots", func(t *testing.T) {
		assert.Empty(t, ComputeSlots(nil))
	})

	t.Run("empty window yields no slots", func(t *testing.T) {
		schedule := &models.Schedule{StartTime: "09:00", EndTime: "09:00", SlotDuration: 30}
		assert.Empty(t, ComputeSlots(schedule))
	})
}

func TestMarkBooked(t *testing.T) {
	schedule := &models.Schedule{StartTime: "09:00", EndTime: "11:00", SlotDuration: 30}
	slots := ComputeSlots(schedule)

	appointments := []models.Appointment{
		{AppointmentDate: "2025-06-02", AppointmentStart: "09:00:00", Status: models.AppointmentStatusPending},
		{AppointmentDate: "2025-06-02", AppointmentStart: "09:30", Status: models.AppointmentStatusConfirmed},
		{AppointmentDate: "2025-06-02", AppointmentStart: "10:00", Status: models.AppointmentStatusCancelled},
		{AppointmentDate: "2025-06-03", AppointmentStart: "10:30", Status: models.AppointmentStatusPending},
	}

	marked := markBooked(slots, appointments, "2025-06-02")

	assert.False(t, marked[0].Available, "pending appointment blocks its slot")
	assert.False(t, marked[1].Available, "confirmed appointment blocks its slot")
	assert.True(t, marked[2].Available, "cancelled appointment releases its slot")
	assert.True(t, marked[3].Available, "other-day appointment does not block")
}

type fakeScheduleClient struct {
	schedule *models.Schedule
	err      error
	calls    int
}

func (f *fakeScheduleClient) FindByDoctorID(ctx context.Context, token, doctorID string) (*models.Schedule, error) {
	f.calls++
	return f.schedule, f.err
}

var _ contracts.ScheduleClient = (*fakeScheduleClient)(nil)

func TestAvailableSlots(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns empty on a non-working day", func(t *testing.T) {
		client := &fakeScheduleClient{schedule: &models.Schedule{
			StartTime: "09:00", EndTime: "12:00", SlotDuration: 30,
			WorkingDays: "MON,TUE,WED",
		}}
		uc := &slotUsecase{ScheduleClient: client, Log: logger}

		// 2025-06-01 is a Sunday.
		result, err := uc.AvailableSlots(context.Background(), "token", "doc-1", "2025-06-01")

		require.NoError(t, err)
		assert.Empty(t, result.Slots)
	})

	t.Run("returns marked slots on a working day", func(t *testing.T) {
		client := &fakeScheduleClient{schedule: &models.Schedule{
			StartTime: "09:00", EndTime: "10:00", SlotDuration: 30,
			WorkingDays: "MON,TUE,WED",
			Appointments: []models.Appointment{
				{AppointmentDate: "2025-06-02", AppointmentStart: "09:00", Status: models.AppointmentStatusPending},
			},
		}}
		uc := &slotUsecase{ScheduleClient: client, Log: logger}

		result, err := uc.AvailableSlots(context.Background(), "token", "doc-1", "2025-06-02")

		require.NoError(t, err)
		slots, ok := result.Slots.([]models.TimeSlot)
		require.True(t, ok)
		require.Len(t, slots, 2)
		assert.False(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("rejects an unparseable date before calling upstream", func(t *testing.T) {
		client := &fakeScheduleClient{}
		uc := &slotUsecase{ScheduleClient: client, Log: logger}

		_, err := uc.AvailableSlots(context.Background(), "token", "doc-1", "junk")

		require.Error(t, err)
		assert.Zero(t, client.calls)
	})
}

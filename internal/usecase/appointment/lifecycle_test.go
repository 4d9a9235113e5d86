package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/httperr"
	"github.com/agendabi/bi-scheduler/internal/models"
)

func seedBooking(t *testing.T, repo *fakeRepo, userID string) *models.Appointment {
	t.Helper()

	repo.addService("S1")
	repo.addPosto("L1", "ACTIVE")

	ap, err := newCreateBooking(repo).Execute(context.Background(), validInput(userID))
	require.NoError(t, err)
	return ap
}

func TestSetStatusByOwner(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	uc := NewSetStatus(repo, newTestDispatcher())

	updated, err := uc.Execute(
		context.Background(),
		domain.Actor{ID: "U1", Role: domain.RoleUser},
		ap.ID,
		"CANCELLED",
	)
	require.NoError(t, err)

	assert.Equal(t, "CANCELLED", updated.Status)
	assert.NotNil(t, updated.CancelledAt)
	assert.Equal(t, "CANCELLED", repo.appointments[ap.ID].Status)
}

func TestSetStatusByAdmin(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	uc := NewSetStatus(repo, newTestDispatcher())

	updated, err := uc.Execute(
		context.Background(),
		domain.Actor{ID: "admin-1", Role: domain.RoleAdmin},
		ap.ID,
		"COMPLETED",
	)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)
}

func TestSetStatusForbiddenForStranger(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	uc := NewSetStatus(repo, newTestDispatcher())

	for _, role := range []string{domain.RoleUser, domain.RoleEmployee} {
		_, err := uc.Execute(
			context.Background(),
			domain.Actor{ID: "intruder", Role: role},
			ap.ID,
			"CANCELLED",
		)
		assert.True(t, httperr.IsBusiness(err, "forbidden"))
	}

	// registro intacto
	assert.Equal(t, "SCHEDULED", repo.appointments[ap.ID].Status)
}

func TestSetStatusNotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := NewSetStatus(repo, newTestDispatcher())

	_, err := uc.Execute(
		context.Background(),
		domain.Actor{ID: "U1", Role: domain.RoleUser},
		"missing-id",
		"CANCELLED",
	)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestSetStatusInvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	uc := NewSetStatus(repo, newTestDispatcher())
	actor := domain.Actor{ID: "U1", Role: domain.RoleUser}

	_, err := uc.Execute(context.Background(), actor, ap.ID, "CANCELLED")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), actor, ap.ID, "COMPLETED")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = uc.Execute(context.Background(), actor, ap.ID, "whatever")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	check := NewCheckAvailability(repo)

	available, err := check.Execute(context.Background(), "L1", ap.AppointmentDate, ap.AppointmentTime)
	require.NoError(t, err)
	assert.False(t, available)

	_, err = NewCancelBooking(repo, newTestDispatcher()).Execute(
		context.Background(),
		domain.Actor{ID: "U1", Role: domain.RoleUser},
		ap.ID,
	)
	require.NoError(t, err)

	available, err = check.Execute(context.Background(), "L1", ap.AppointmentDate, ap.AppointmentTime)
	require.NoError(t, err)
	assert.True(t, available, "cancelled appointment no longer occupies the slot")
}

func TestCancelForbiddenForStranger(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	_, err := NewCancelBooking(repo, newTestDispatcher()).Execute(
		context.Background(),
		domain.Actor{ID: "U2", Role: domain.RoleUser},
		ap.ID,
	)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Equal(t, "SCHEDULED", repo.appointments[ap.ID].Status)
}

func TestPurgeRequiresAdmin(t *testing.T) {
	repo := newFakeRepo()
	ap := seedBooking(t, repo, "U1")

	uc := NewPurgeAppointment(repo, newTestDispatcher())

	err := uc.Execute(
		context.Background(),
		domain.Actor{ID: "U1", Role: domain.RoleUser},
		ap.ID,
	)
	assert.True(t, httperr.IsBusiness(err, "forbidden"),
		"even the owner cannot hard-delete")
	assert.Len(t, repo.appointments, 1)

	err = uc.Execute(
		context.Background(),
		domain.Actor{ID: "admin-1", Role: domain.RoleAdmin},
		ap.ID,
	)
	require.NoError(t, err)
	assert.Empty(t, repo.appointments)
}

func TestListAppointmentsVisibility(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("S1")
	repo.addPosto("L1", "ACTIVE")

	uc := newCreateBooking(repo)

	in1 := validInput("U1")
	_, err := uc.Execute(context.Background(), in1)
	require.NoError(t, err)

	in2 := validInput("U2")
	in2.Time = "15:00"
	_, err = uc.Execute(context.Background(), in2)
	require.NoError(t, err)

	list := NewListAppointments(repo)

	mine, err := list.Execute(context.Background(), domain.Actor{ID: "U1", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := list.Execute(context.Background(), domain.Actor{ID: "adm", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package appointment

import (
	"context"
	"time"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/internal/waitingroom"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		return nil, errors.BadRequest("patient does not exist", err)
	}

	status := req.Status
	if status == "" {
		status = model.AppointmentStatusScheduled
	}

	apt := &model.Appointment{
		PatientID:   req.PatientID,
		Date:        req.Date,
		Duration:    req.Duration,
		Status:      status,
		Notes:       req.Notes,
		IsUrgent:    req.IsUrgent,
		IsPassenger: req.IsPassenger,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, errors.Internal(err)
	}
	return apt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("appointment", err)
	}
	return apt, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("appointment", err)
	}

	req.Apply(apt)
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, errors.NotFound("appointment", err)
	}
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NotFound("appointment", err)
	}
	return nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return appointments, nil
}

// CallPatient moves a scheduled appointment into consultation.
func (s *Service) CallPatient(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusScheduled, model.AppointmentStatusInProgress)
}

// FinishConsultation completes an in-progress appointment.
func (s *Service) FinishConsultation(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusInProgress, model.AppointmentStatusCompleted)
}

func (s *Service) transition(ctx context.Context, id int64, from, to model.AppointmentStatus) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("appointment", err)
	}

	if apt.Status != from {
		return nil, errors.BadRequest(
			"appointment is "+string(apt.Status)+", expected "+string(from), nil)
	}

	apt.Status = to
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, errors.NotFound("appointment", err)
	}
	return apt, nil
}

// WaitingRoom derives the front-desk queue from today's appointments.
func (s *Service) WaitingRoom(ctx context.Context) (waitingroom.Queue, error) {
	now := s.now()

	appointments, err := s.repo.ListForDay(ctx, now)
	if err != nil {
		return waitingroom.Queue{}, errors.Internal(err)
	}
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return waitingroom.Queue{}, errors.Internal(err)
	}

	return waitingroom.Build(appointments, patients, now), nil
}

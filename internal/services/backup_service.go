package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"vacation-tracker/internal/apperrors"
	"vacation-tracker/internal/mailer"
	"vacation-tracker/internal/models"
	"vacation-tracker/internal/repositories"
	"vacation-tracker/internal/storage"
)

// BackupServiceInterface определяет методы сервиса резервного копирования
type BackupServiceInterface interface {
	PerformBackup(ctx context.Context) error
	NextBackupTime() time.Time
}

// BackupService делает снимок сотрудников и отпусков и доставляет его наружу:
// письмом на фиксированный адрес и, если настроено, в объектное хранилище.
// Экземпляр один на процесс, создается в композиционном корне и передается
// по ссылке - состояние расписания (последний и следующий запуск) общее для
// всех вызывающих и не дублируется.
type BackupService struct {
	employeeRepo   repositories.EmployeeRepositoryInterface
	vacationRepo   repositories.VacationRepositoryInterface
	reconciliation ReconciliationServiceInterface
	mail           mailer.Mailer
	uploader       storage.SnapshotUploader // nil, если S3 не настроен
	recipient      string
	interval       time.Duration

	mu        sync.Mutex
	lastRun   time.Time // время последнего успешного запуска
	startedAt time.Time // якорь до первого успешного запуска
}

// NewBackupService создает новый экземпляр BackupService.
// uploader может быть nil - тогда снимок уходит только почтой.
func NewBackupService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	vacationRepo repositories.VacationRepositoryInterface,
	reconciliation ReconciliationServiceInterface,
	mail mailer.Mailer,
	uploader storage.SnapshotUploader,
	recipient string,
	interval time.Duration,
) *BackupService {
	return &BackupService{
		employeeRepo:   employeeRepo,
		vacationRepo:   vacationRepo,
		reconciliation: reconciliation,
		mail:           mail,
		uploader:       uploader,
		recipient:      recipient,
		interval:       interval,
		startedAt:      time.Now(),
	}
}

// PerformBackup читает оба хранилища, сериализует снимок и доставляет его.
// Ошибка чтения - ErrDataAccess, и доставка при этом даже не начинается.
// Ошибка любой настроенной доставки - ErrDelivery; время успешного запуска
// фиксируется только когда все получатели приняли снимок.
// Параллельные вызовы выполняются по очереди под мьютексом.
func (s *BackupService) PerformBackup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Перед снимком приводим used/remaining в согласованное состояние
	if err := s.reconciliation.Run(time.Now().Year()); err != nil {
		return apperrors.DataAccess("сверка перед резервным копированием", err)
	}

	employees, err := s.employeeRepo.List()
	if err != nil {
		return apperrors.DataAccess("чтение списка сотрудников", err)
	}
	vacations, err := s.vacationRepo.List(nil)
	if err != nil {
		return apperrors.DataAccess("чтение записей об отпусках", err)
	}

	snapshot, err := buildSnapshot(employees, vacations)
	if err != nil {
		return fmt.Errorf("ошибка сериализации снимка: %w", err)
	}

	now := time.Now()
	subject := fmt.Sprintf("Резервная копия данных об отпусках за %s", now.Format("02.01.2006"))
	body := fmt.Sprintf("Снимок от %s: сотрудников %d, записей об отпусках %d.",
		now.Format("02.01.2006 15:04"), len(employees), len(vacations))
	attachments := map[string][]byte{
		"vacation-backup-" + now.Format("2006-01-02") + ".csv": snapshot,
	}

	if err := s.mail.Send(ctx, s.recipient, subject, body, attachments); err != nil {
		return apperrors.Delivery("отправка резервной копии почтой", err)
	}

	if s.uploader != nil {
		key := fmt.Sprintf("backups/%s-%s.csv", now.Format("20060102T150405"), uuid.NewString()[:8])
		if err := s.uploader.Upload(ctx, key, snapshot); err != nil {
			return apperrors.Delivery("выгрузка резервной копии в объектное хранилище", err)
		}
	}

	s.lastRun = time.Now()
	log.Printf("Резервное копирование завершено: сотрудников %d, отпусков %d, получатель %s",
		len(employees), len(vacations), s.recipient)
	return nil
}

// NextBackupTime возвращает время следующего запланированного запуска.
// До первого успешного запуска якорем служит время старта процесса,
// поэтому метод никогда не завершается ошибкой.
func (s *BackupService) NextBackupTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	anchor := s.lastRun
	if anchor.IsZero() {
		anchor = s.startedAt
	}
	return NextRunTime(anchor, s.interval)
}

// NextRunTime - чистая функция расчета следующего запуска от якоря и интервала
func NextRunTime(anchor time.Time, interval time.Duration) time.Time {
	return anchor.Add(interval)
}

// buildSnapshot сериализует обе коллекции в один CSV-документ с двумя секциями
func buildSnapshot(employees []models.Employee, vacations []models.Vacation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"#employees"},
		{"id", "name", "allowance", "used", "remaining", "color"},
	}
	for _, e := range employees {
		records = append(records, []string{
			strconv.Itoa(e.ID), e.Name, strconv.Itoa(e.Allowance),
			strconv.Itoa(e.Used), strconv.Itoa(e.Remaining), e.Color,
		})
	}
	records = append(records,
		[]string{"#vacations"},
		[]string{"id", "employee_id", "start_date", "end_date", "working_days", "note"},
	)
	for _, v := range vacations {
		records = append(records, []string{
			strconv.Itoa(v.ID), strconv.Itoa(v.EmployeeID),
			v.StartDate.Format("2006-01-02"), v.EndDate.Format("2006-01-02"),
			strconv.Itoa(v.WorkingDays), v.Note,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

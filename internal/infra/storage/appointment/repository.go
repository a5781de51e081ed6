package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/AnthonyDelgadoMiami/nail-salon/internal/domain"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/dbmetrics"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/psqlbuilder"
)

// appointmentColumns колонки записи вместе с денормализованными полями клиента и услуги
var appointmentColumns = []string{
	"a.id",
	"a.start_at",
	"a.duration_minutes",
	"a.client_id",
	"a.service_id",
	"a.employee_id",
	"a.price",
	"a.notes",
	"a.status",
	"c.first_name",
	"c.last_name",
	"s.name",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её -
// так создание записи и проверка конфликтов выполняются атомарно
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"start_at",
			"duration_minutes",
			"client_id",
			"service_id",
			"employee_id",
			"price",
			"notes",
			"status",
		).
		Values(
			appt.StartAt,
			appt.DurationMinutes,
			appt.ClientID,
			appt.ServiceID,
			appt.EmployeeID,
			appt.Price,
			appt.Notes,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID вместе с именем клиента и названием услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, клиенту, мастеру, статусу
// и включению неактивных записей (отмененных, no-show).
//
// Внутри транзакции при фильтре по периоду добавляет FOR UPDATE OF a -
// блокирует прочитанные записи на время проверки конфликтов при бронировании
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect()

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.client_id": *filter.ClientID})
	}
	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.employee_id": *filter.EmployeeID})
	}

	// Фильтрация по периоду: даты трактуются как календарные сутки
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.start_at": startOfDay(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.start_at": startOfDay(*filter.EndDate).AddDate(0, 0, 1)})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("a.start_at ASC")

	// Если используется транзакция с фильтром по периоду, блокируем записи
	// (путь создания/переноса записи - закрываем гонку check-then-insert)
	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByClientID получает историю записей клиента, сначала свежие
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.client_id": clientID}).
		OrderBy("a.start_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByEmployeeID получает записи мастера, сначала свежие
func (r *Repository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.employee_id": employeeID}).
		OrderBy("a.start_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Update обновляет запись (перенос/редактирование)
func (r *Repository) Update(ctx context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("start_at", appt.StartAt).
		Set("duration_minutes", appt.DurationMinutes).
		Set("client_id", appt.ClientID).
		Set("service_id", appt.ServiceID).
		Set("employee_id", appt.EmployeeID).
		Set("price", appt.Price).
		Set("notes", appt.Notes).
		Set("status", appt.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	appt.ID = id
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CompletePast помечает прошедшие scheduled/confirmed записи как completed
// Идемпотентна: повторный запуск ничего не меняет и возвращает 0
func (r *Repository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sweepableStatusStrings := make([]string, len(domain.SweepableStatuses))
	for i, s := range domain.SweepableStatuses {
		sweepableStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Expr("start_at + duration_minutes * INTERVAL '1 minute' < ?", now)).
		Where(squirrel.Eq{"status": sweepableStatusStrings}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Delete физически удаляет запись (действие сотрудника салона)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountStatsByEmployee считает записи мастера: всего, за текущий месяц, за сегодня
func (r *Repository) CountStatsByEmployee(ctx context.Context, employeeID int64, now time.Time) (*domain.EmployeeStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfToday := startOfDay(now)
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE start_at >= ? AND start_at < ?)", startOfMonth, startOfTomorrow)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE start_at >= ? AND start_at < ?)", startOfToday, startOfTomorrow)).
		From("appointments").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountStatsByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.EmployeeStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalAppointments,
		&stats.ThisMonthAppointments,
		&stats.TodayAppointments,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: CountStatsByEmployee - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

// CountByServiceID считает записи, ссылающиеся на услугу каталога
// Используется перед удалением услуги
func (r *Repository) CountByServiceID(ctx context.Context, serviceID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByServiceID - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByServiceID - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// baseSelect общий SELECT с джойнами к клиентам и услугам
func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		LeftJoin("services s ON s.id = a.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.StartAt,
		&appt.DurationMinutes,
		&appt.ClientID,
		&appt.ServiceID,
		&appt.EmployeeID,
		&appt.Price,
		&appt.Notes,
		&appt.Status,
		&appt.ClientFirstName,
		&appt.ClientLastName,
		&appt.ServiceName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// startOfDay обнуляет время, оставляя календарную дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vacation-tracker/internal/apperrors"
	"vacation-tracker/internal/models"
	"vacation-tracker/internal/services"
)

// getIntQueryParam возвращает целочисленный query-параметр или nil, если он не задан
func getIntQueryParam(c *gin.Context, paramName string) *int {
	valStr := c.Query(paramName)
	if valStr == "" {
		return nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Некорректное значение для параметра '%s': %v", paramName, err)
		return nil
	}
	return &val
}

// AppHandler объединяет обработчики для разных частей приложения
type AppHandler struct {
	employeeService       services.EmployeeServiceInterface
	vacationService       services.VacationServiceInterface
	reconciliationService services.ReconciliationServiceInterface
	backupService         services.BackupServiceInterface
}

// NewAppHandler создает новый экземпляр AppHandler
func NewAppHandler(
	es services.EmployeeServiceInterface,
	vs services.VacationServiceInterface,
	rs services.ReconciliationServiceInterface,
	bs services.BackupServiceInterface,
) *AppHandler {
	return &AppHandler{
		employeeService:       es,
		vacationService:       vs,
		reconciliationService: rs,
		backupService:         bs,
	}
}

// --- Сотрудники ---

// GetEmployees обработчик для получения списка сотрудников
func (h *AppHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeService.GetEmployees()
	if err != nil {
		log.Printf("Ошибка получения списка сотрудников: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения списка сотрудников"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// CreateEmployee обработчик для создания сотрудника
func (h *AppHandler) CreateEmployee(c *gin.Context) {
	var input models.EmployeeCreateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	employee, err := h.employeeService.AddEmployee(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Ошибка создания сотрудника: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания сотрудника"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "employee": employee})
}

// ReplaceEmployees обработчик для массовой замены списка сотрудников
func (h *AppHandler) ReplaceEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := c.ShouldBindJSON(&employees); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	if err := h.employeeService.ReplaceEmployees(employees); err != nil {
		log.Printf("Ошибка замены списка сотрудников: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка замены списка сотрудников"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Отпуска ---

// GetVacations обработчик для получения записей об отпусках
func (h *AppHandler) GetVacations(c *gin.Context) {
	employeeID := getIntQueryParam(c, "employee_id")

	vacations, err := h.vacationService.GetVacations(employeeID)
	if err != nil {
		log.Printf("Ошибка получения записей об отпусках: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения записей об отпусках"})
		return
	}
	c.JSON(http.StatusOK, vacations)
}

// CreateVacation обработчик для создания записи об отпуске
func (h *AppHandler) CreateVacation(c *gin.Context) {
	var input models.VacationCreateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	vacation, err := h.vacationService.AddVacation(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Ошибка создания записи об отпуске: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания записи об отпуске"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "vacation": vacation})
}

// DeleteVacation обработчик для удаления записи об отпуске
func (h *AppHandler) DeleteVacation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID записи"})
		return
	}

	if err := h.vacationService.RemoveVacation(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Запись об отпуске не найдена"})
			return
		}
		log.Printf("Ошибка удаления записи об отпуске %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления записи об отпуске"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Сверка ---

// RunReconciliation обработчик для ручного запуска сверки used/remaining
func (h *AppHandler) RunReconciliation(c *gin.Context) {
	year := 0
	if yearParam := getIntQueryParam(c, "year"); yearParam != nil {
		year = *yearParam
	}

	if err := h.reconciliationService.Run(year); err != nil {
		log.Printf("Ошибка выполнения сверки: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка выполнения сверки"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Резервное копирование ---

// TriggerBackup обработчик для запуска резервного копирования вручную
func (h *AppHandler) TriggerBackup(c *gin.Context) {
	if err := h.backupService.PerformBackup(c.Request.Context()); err != nil {
		log.Printf("Ошибка резервного копирования: %v", err)
		errorKind := "внутренняя ошибка"
		if errors.Is(err, apperrors.ErrDataAccess) {
			errorKind = "ошибка доступа к данным"
		} else if errors.Is(err, apperrors.ErrDelivery) {
			errorKind = "ошибка доставки"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Резервное копирование не выполнено",
			"error":   errorKind,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Резервная копия отправлена",
	})
}

// GetBackupStatus обработчик для получения времени следующего резервного копирования
func (h *AppHandler) GetBackupStatus(c *gin.Context) {
	next := h.backupService.NextBackupTime()
	c.JSON(http.StatusOK, models.BackupStatusDTO{
		Success:             true,
		NextBackupTime:      next.Format(time.RFC3339),
		NextBackupFormatted: next.Format("02.01.2006 15:04"),
	})
}

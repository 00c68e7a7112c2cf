package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultcare/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// @Summary Создать недельное расписание
// @Description Создает шаблон рабочей недели консультанта. У консультанта может быть только одно недельное расписание
// @Tags Недельное расписание
// @Accept json
// @Produce json
// @Param input body domain.CreateWeeklyScheduleDTO true "Данные недельного расписания"
// @Success 201 {object} successResponseBody{data=domain.WeeklySchedule}
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Консультант не найден"
// @Failure 409 {object} errorResponseBody "Расписание уже существует"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /weekly-schedules [post]
func (h *Handler) createWeeklySchedule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateWeeklyScheduleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	schedule, err := h.services.WeeklySchedule.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка создания недельного расписания")
		return
	}

	createdResponse(c, schedule)
}

// @Summary Список недельных расписаний
// @Tags Недельное расписание
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param page_size query int false "Размер страницы" default(20)
// @Success 200 {object} paginatedResponse{data=[]domain.WeeklySchedule}
// @Failure 400 {object} errorResponseBody "Неверные параметры пагинации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /weekly-schedules [get]
func (h *Handler) getWeeklySchedules(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		badRequestResponse(c, "неверный номер страницы")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		badRequestResponse(c, "неверный размер страницы")
		return
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	schedules, total, err := h.services.WeeklySchedule.List(c.Request.Context(), domain.WeeklyScheduleFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения списка недельных расписаний")
		return
	}

	paginatedSuccessResponse(c, schedules, total, page, pageSize)
}

// @Summary Недельное расписание консультанта
// @Tags Недельное расписание
// @Produce json
// @Param id path string true "ID консультанта"
// @Success 200 {object} successResponseBody{data=domain.WeeklySchedule}
// @Failure 400 {object} errorResponseBody "Неверный ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Расписание не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultants/{id}/weekly-schedule [get]
func (h *Handler) getWeeklySchedule(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	schedule, err := h.services.WeeklySchedule.Get(c.Request.Context(), consultantID)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения недельного расписания")
		return
	}

	successResponse(c, http.StatusOK, schedule)
}

// @Summary Обновить недельное расписание
// @Description Частичное обновление: переданные дни недели заменяют сохраненные, остальные не меняются
// @Tags Недельное расписание
// @Accept json
// @Produce json
// @Param id path string true "ID консультанта"
// @Param input body domain.UpdateWeeklyScheduleDTO true "Изменения"
// @Success 200 {object} successResponseBody{data=domain.WeeklySchedule}
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Расписание не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultants/{id}/weekly-schedule [put]
func (h *Handler) updateWeeklySchedule(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateWeeklyScheduleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	schedule, err := h.services.WeeklySchedule.Update(c.Request.Context(), consultantID, req)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка обновления недельного расписания")
		return
	}

	successResponse(c, http.StatusOK, schedule)
}

// @Summary Удалить недельное расписание
// @Tags Недельное расписание
// @Param id path string true "ID консультанта"
// @Success 204
// @Failure 400 {object} errorResponseBody "Неверный ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Расписание не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultants/{id}/weekly-schedule [delete]
func (h *Handler) deleteWeeklySchedule(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.WeeklySchedule.Delete(c.Request.Context(), consultantID); err != nil {
		h.serviceErrorResponse(c, err, "ошибка удаления недельного расписания")
		return
	}

	c.Status(http.StatusNoContent)
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultcare/internal/domain"
)

// @Summary Создать исключение в расписании
// @Description Заменяет один день недельного расписания. Без времени начала и окончания день считается выходным
// @Tags Исключения
// @Accept json
// @Produce json
// @Param input body domain.CreateOverrideDTO true "Данные исключения"
// @Success 201 {object} successResponseBody{data=domain.ScheduleOverride}
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Консультант не найден"
// @Failure 409 {object} errorResponseBody "Исключение на эту дату уже существует"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /overrides [post]
func (h *Handler) createOverride(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateOverrideDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	override, err := h.services.Override.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка создания исключения")
		return
	}

	createdResponse(c, override)
}

// @Summary Исключение по ID
// @Tags Исключения
// @Produce json
// @Param id path string true "ID исключения"
// @Success 200 {object} successResponseBody{data=domain.ScheduleOverride}
// @Failure 400 {object} errorResponseBody "Неверный ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Исключение не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /overrides/{id} [get]
func (h *Handler) getOverrideByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	override, err := h.services.Override.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения исключения")
		return
	}

	successResponse(c, http.StatusOK, override)
}

// @Summary Обновить исключение
// @Description Частичное обновление; пустая строка очищает поле времени
// @Tags Исключения
// @Accept json
// @Produce json
// @Param id path string true "ID исключения"
// @Param input body domain.UpdateOverrideDTO true "Изменения"
// @Success 200 {object} successResponseBody{data=domain.ScheduleOverride}
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Исключение не найдено"
// @Failure 409 {object} errorResponseBody "Исключение на эту дату уже существует"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /overrides/{id} [put]
func (h *Handler) updateOverride(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateOverrideDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	override, err := h.services.Override.Update(c.Request.Context(), id, req)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка обновления исключения")
		return
	}

	successResponse(c, http.StatusOK, override)
}

// @Summary Удалить исключение
// @Tags Исключения
// @Param id path string true "ID исключения"
// @Success 204
// @Failure 400 {object} errorResponseBody "Неверный ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Исключение не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /overrides/{id} [delete]
func (h *Handler) deleteOverride(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Override.Delete(c.Request.Context(), id); err != nil {
		h.serviceErrorResponse(c, err, "ошибка удаления исключения")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Исключения консультанта
// @Tags Исключения
// @Produce json
// @Param id path string true "ID консультанта"
// @Param date_from query string false "Начало периода (YYYY-MM-DD)"
// @Param date_to query string false "Конец периода (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=[]domain.ScheduleOverride}
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Консультант не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultants/{id}/overrides [get]
func (h *Handler) getConsultantOverrides(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	from, ok := parseOptionalDateQuery(c, "date_from")
	if !ok {
		return
	}
	to, ok := parseOptionalDateQuery(c, "date_to")
	if !ok {
		return
	}

	overrides, err := h.services.Override.ListByConsultant(c.Request.Context(), consultantID, from, to)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения исключений")
		return
	}

	successResponse(c, http.StatusOK, overrides)
}

// @Summary Исключение консультанта на дату
// @Tags Исключения
// @Produce json
// @Param id path string true "ID консультанта"
// @Param date path string true "Дата (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=domain.ScheduleOverride}
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Исключение не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultants/{id}/overrides/{date} [get]
func (h *Handler) getOverrideByDate(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	date, ok := parseDate(c, c.Param("date"), "date")
	if !ok {
		return
	}

	override, err := h.services.Override.FindByConsultantAndDate(c.Request.Context(), consultantID, date)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка получения исключения")
		return
	}

	successResponse(c, http.StatusOK, override)
}

// @Summary Удалить исключение консультанта на дату
// @Tags Исключения
// @Param id path string true "ID консультанта"
// @Param date path string true "Дата (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Исключение не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultants/{id}/overrides/{date} [delete]
func (h *Handler) deleteOverrideByDate(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	date, ok := parseDate(c, c.Param("date"), "date")
	if !ok {
		return
	}

	if err := h.services.Override.DeleteByDate(c.Request.Context(), consultantID, date); err != nil {
		h.serviceErrorResponse(c, err, "ошибка удаления исключения")
		return
	}

	c.Status(http.StatusNoContent)
}

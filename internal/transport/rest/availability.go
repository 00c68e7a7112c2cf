package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Рабочее время консультанта на дату
// @Description Возвращает итоговое расписание дня с учетом исключений и недельного шаблона
// @Tags Доступность
// @Produce json
// @Param id path string true "ID консультанта"
// @Param date query string true "Дата (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=domain.ResolvedDaySchedule}
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 404 {object} errorResponseBody "Консультант не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /consultants/{id}/availability [get]
func (h *Handler) getAvailability(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	date, ok := parseDate(c, c.Query("date"), "date")
	if !ok {
		return
	}

	resolved, err := h.services.Availability.Resolve(c.Request.Context(), consultantID, date)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка расчета расписания")
		return
	}

	successResponse(c, http.StatusOK, resolved)
}

// @Summary Рабочее время консультанта за период
// @Tags Доступность
// @Produce json
// @Param id path string true "ID консультанта"
// @Param date_from query string true "Начало периода (YYYY-MM-DD)"
// @Param date_to query string true "Конец периода (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=[]domain.ResolvedDaySchedule}
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 404 {object} errorResponseBody "Консультант не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /consultants/{id}/availability/range [get]
func (h *Handler) getAvailabilityRange(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	from, ok := parseDate(c, c.Query("date_from"), "date_from")
	if !ok {
		return
	}
	to, ok := parseDate(c, c.Query("date_to"), "date_to")
	if !ok {
		return
	}

	days, err := h.services.Availability.ResolveRange(c.Request.Context(), consultantID, from, to)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка расчета расписания за период")
		return
	}

	successResponse(c, http.StatusOK, days)
}

// @Summary Свободные слоты консультанта
// @Description Делит рабочее время дня на слоты, исключая перерыв и уже записанные приемы
// @Tags Доступность
// @Produce json
// @Param id path string true "ID консультанта"
// @Param date query string true "Дата (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=domain.DayAvailability}
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 404 {object} errorResponseBody "Консультант не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /consultants/{id}/slots [get]
func (h *Handler) getAvailableSlots(c *gin.Context) {
	consultantID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	date, ok := parseDate(c, c.Query("date"), "date")
	if !ok {
		return
	}

	availability, err := h.services.Availability.GenerateAvailableSlots(c.Request.Context(), consultantID, date)
	if err != nil {
		h.serviceErrorResponse(c, err, "ошибка расчета свободных слотов")
		return
	}

	successResponse(c, http.StatusOK, availability)
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"modern-hotel/models"
	"modern-hotel/services"
	"modern-hotel/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Service: svc}
}

type createReservationRequest struct {
	GuestName    string `json:"guestName" binding:"required"`
	GuestContact string `json:"guestContact"`
	RoomType     string `json:"roomType" binding:"required"`
	CheckIn      string `json:"checkIn" binding:"required"`
	Nights       int    `json:"nights" binding:"required"`
}

type editReservationRequest struct {
	GuestName    *string `json:"guestName"`
	GuestContact *string `json:"guestContact"`
	RoomType     *string `json:"roomType"`
	CheckIn      *string `json:"checkIn"`
	Nights       *int    `json:"nights"`
}

// CreateReservation books a room (POST /api/reservations).
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	roomType, err := models.ParseRoomType(req.RoomType)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := rc.Service.Create(req.GuestName, req.GuestContact, roomType, checkIn, req.Nights)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": res})
	case errors.Is(err, services.ErrNotDurable):
		// Booked in memory but the flush failed; report success with a warning.
		log.Printf("warning: %v", err)
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": res, "warning": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoRoomAvailable):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// GetReservations lists every reservation ordered by check-in
// (GET /api/reservations).
func (rc *ReservationController) GetReservations(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.List())
}

// GetReservation fetches one reservation by ID (GET /api/reservations/:id).
func (rc *ReservationController) GetReservation(c *gin.Context) {
	res, err := rc.Service.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// SearchReservations matches by guest-name substring or exact ID
// (GET /api/reservations/search?name=ali or ?id=RES-001).
func (rc *ReservationController) SearchReservations(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		res, err := rc.Service.Get(id)
		if err != nil {
			utils.JSONSuccess(c, http.StatusOK, []services.ReservationDetail{})
			return
		}
		utils.JSONSuccess(c, http.StatusOK, []services.ReservationDetail{*res})
		return
	}

	name := c.Query("name")
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "provide a name or id query parameter")
		return
	}
	results := rc.Service.SearchByGuest(name)
	if results == nil {
		results = []services.ReservationDetail{}
	}
	utils.JSONSuccess(c, http.StatusOK, results)
}

// EditReservation updates optional fields (PATCH /api/reservations/:id).
func (rc *ReservationController) EditReservation(c *gin.Context) {
	var req editReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	input := services.EditInput{
		GuestName:    req.GuestName,
		GuestContact: req.GuestContact,
		Nights:       req.Nights,
	}
	if req.RoomType != nil {
		rt, err := models.ParseRoomType(*req.RoomType)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		input.RoomType = &rt
	}
	if req.CheckIn != nil {
		d, err := utils.ParseDate(*req.CheckIn)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		input.CheckIn = &d
	}

	res, err := rc.Service.Edit(c.Param("id"), input)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, res)
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoomRetained) || errors.Is(err, services.ErrNotDurable):
		log.Printf("warning: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": res, "warning": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// DeleteReservation cancels a booking (DELETE /api/reservations/:id).
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id := c.Param("id")
	err := rc.Service.Cancel(id)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation " + id + " canceled"})
	case errors.Is(err, services.ErrNotDurable):
		log.Printf("warning: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": true, "warning": err.Error()})
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

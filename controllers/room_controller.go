package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"modern-hotel/models"
	"modern-hotel/services"
	"modern-hotel/utils"
)

type RoomController struct {
	Service *services.ReservationService
}

func NewRoomController(svc *services.ReservationService) *RoomController {
	return &RoomController{Service: svc}
}

// GetRooms returns the whole catalog (GET /api/rooms).
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.Rooms())
}

// GetAvailableRooms filters the catalog by type and date range
// (GET /api/rooms/available?type=Double&check_in=2024-01-01&nights=2).
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	roomType, err := models.ParseRoomType(c.Query("type"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	nights, err := strconv.Atoi(c.Query("nights"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "nights must be an integer")
		return
	}

	rooms, err := rc.Service.AvailableRooms(roomType, checkIn, nights)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/httpx"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/service"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/validation"
)

// Hostel photo uploads are capped at 5MB.
const maxHostelImageSize = 5 * 1024 * 1024

type HostelHandler struct {
	hostelService *service.HostelService
}

func NewHostelHandler(hostelService *service.HostelService) *HostelHandler {
	return &HostelHandler{hostelService: hostelService}
}

// GET /api/hostels
func (h *HostelHandler) List(c *fiber.Ctx) error {
	hostels, err := h.hostelService.List()
	if err != nil {
		return httpx.FromError(c, err)
	}

	responses := make([]interface{}, len(hostels))
	for i, hostel := range hostels {
		responses[i] = hostel.ToResponse()
	}
	return c.JSON(fiber.Map{"hostels": responses, "count": len(hostels)})
}

// GET /api/hostels/:id
func (h *HostelHandler) Get(c *fiber.Ctx) error {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid hostel id")
	}

	hostel, err := h.hostelService.Get(id)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(hostel.ToResponse())
}

// POST /api/hostels
func (h *HostelHandler) Create(c *fiber.Ctx) error {
	var input service.CreateHostelInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if input.Name == "" || input.Location == "" {
		return httpx.BadRequest(c, "missing_fields", "Name and location are required")
	}

	hostel, err := h.hostelService.Create(input)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(hostel.ToResponse())
}

type addRoomInput struct {
	RoomNumber    string  `json:"room_number"`
	Capacity      int     `json:"capacity"`
	PricePerMonth float64 `json:"price_per_month"`
}

// POST /api/hostels/:id/rooms
func (h *HostelHandler) AddRoom(c *fiber.Ctx) error {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid hostel id")
	}

	var input addRoomInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if input.RoomNumber == "" || input.Capacity <= 0 {
		return httpx.BadRequest(c, "missing_fields", "Room number and positive capacity are required")
	}

	room, err := h.hostelService.AddRoom(id, input.RoomNumber, input.Capacity, input.PricePerMonth)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// POST /api/hostels/:id/image
func (h *HostelHandler) UploadImage(c *fiber.Ctx) error {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid hostel id")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return httpx.BadRequest(c, "missing_image", "An image file is required")
	}
	if file.Size > maxHostelImageSize {
		return httpx.BadRequest(c, "image_too_large", "Image exceeds the 5MB limit")
	}

	src, err := file.Open()
	if err != nil {
		return httpx.BadRequest(c, "unreadable_image", "Could not read uploaded image")
	}
	defer src.Close()

	key, err := h.hostelService.UploadImage(c.Context(), id, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"image_key": key})
}

package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/config"
)

/*
=======================
  INPUT STRUCT
=======================
*/

type MultipartEventInput struct {
	Title          string
	TitleSet       bool
	Description    string
	DescriptionSet bool
	Venue          string
	VenueSet       bool
	Date           string
	DateSet        bool
	StartTime      string
	StartTimeSet   bool
	EndTime        string
	EndTimeSet     bool
	Category       string
	CategorySet    bool
	TicketPrice    float64
	TicketPriceSet bool
	Capacity       int
	CapacitySet    bool

	// ImageFiles are parsed but not yet saved; the handler saves them once
	// the image-count invariant has been checked.
	ImageFiles   []*multipart.FileHeader
	RemoveImages []string
}

/*
=======================
  PARSER
=======================
*/

func parseMultipartEventRequest(c *gin.Context) (MultipartEventInput, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		log.Println("PARSE ERROR:", err)
		return MultipartEventInput{}, err
	}

	input := MultipartEventInput{}

	// ---- STRING FIELDS ----

	if value, ok := c.GetPostForm("title"); ok {
		input.Title = strings.TrimSpace(value)
		input.TitleSet = true
	}

	if value, ok := c.GetPostForm("description"); ok {
		input.Description = strings.TrimSpace(value)
		input.DescriptionSet = true
	}

	if value, ok := c.GetPostForm("venue"); ok {
		input.Venue = strings.TrimSpace(value)
		input.VenueSet = true
	}

	if value, ok := c.GetPostForm("date"); ok {
		input.Date = strings.TrimSpace(value)
		input.DateSet = true
	}

	if value, ok := c.GetPostForm("startTime"); ok {
		input.StartTime = strings.TrimSpace(value)
		input.StartTimeSet = true
	}

	if value, ok := c.GetPostForm("endTime"); ok {
		input.EndTime = strings.TrimSpace(value)
		input.EndTimeSet = true
	}

	if value, ok := c.GetPostForm("category"); ok {
		input.Category = strings.TrimSpace(value)
		input.CategorySet = true
	}

	// ---- NUMBER FIELDS ----

	if value, ok := c.GetPostForm("ticketPrice"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return MultipartEventInput{}, err
		}
		input.TicketPrice = parsed
		input.TicketPriceSet = true
	}

	if value, ok := c.GetPostForm("capacity"); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return MultipartEventInput{}, err
		}
		input.Capacity = parsed
		input.CapacitySet = true
	}

	// ---- IMAGE REMOVALS ----

	input.RemoveImages = c.PostFormArray("removeImages")

	// ---- IMAGE FILES ----

	if c.Request.MultipartForm != nil {
		input.ImageFiles = c.Request.MultipartForm.File["images"]
	}

	return input, nil
}

/*
=======================
  SCHEDULE VALIDATION
=======================
*/

// validateEventSchedule enforces the fixed-width zero-padded storage format
// the expiry sweep's lexicographic comparison depends on. time.Parse alone is
// too lenient (it accepts "9:00"), so each value must survive a reformat
// round trip unchanged.
func validateEventSchedule(date, startTime, endTime string) error {
	if parsed, err := time.Parse("2006-01-02", date); err != nil || parsed.Format("2006-01-02") != date {
		return fmt.Errorf("date must be formatted as YYYY-MM-DD")
	}
	if parsed, err := time.Parse("15:04", startTime); err != nil || parsed.Format("15:04") != startTime {
		return fmt.Errorf("startTime must be formatted as HH:MM")
	}
	if parsed, err := time.Parse("15:04", endTime); err != nil || parsed.Format("15:04") != endTime {
		return fmt.Errorf("endTime must be formatted as HH:MM")
	}
	return nil
}

/*
=======================
  IMAGE SAVE
=======================
*/

func saveEventImage(file *multipart.FileHeader) (string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", fmt.Errorf("image file extension is required")
	}
	allowedExtensions := map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
		".webp": {},
	}
	if _, ok := allowedExtensions[extension]; !ok {
		return "", fmt.Errorf("unsupported image type: %s", extension)
	}
	const maxImageSize = 5 << 20
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image file too large (max 5MB)")
	}

	filename := primitive.NewObjectID().Hex() + extension

	dir := filepath.Join(config.AppEnv.UploadDir, "uploads", "events")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[UPLOAD] saveEventImage: failed to create directory %s: %v", dir, err)
		return "", err
	}

	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[UPLOAD] saveEventImage: failed to create file %s: %v", fullPath, err)
		return "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		log.Printf("[UPLOAD] saveEventImage: failed to open upload %s: %v", file.Filename, err)
		return "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		log.Printf("[UPLOAD] saveEventImage: failed to save file %s: %v", fullPath, err)
		return "", err
	}

	// web-relative path stored on the event document
	return filepath.ToSlash(filepath.Join("uploads", "events", filename)), nil
}

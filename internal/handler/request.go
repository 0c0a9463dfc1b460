package handler

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/middleware"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

var errInvalidBody = apperror.BadRequest("Data tidak valid.")

// flexUint menerima angka maupun string angka dari body JSON; "" dan null dianggap 0.
type flexUint uint

func (f *flexUint) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*f = flexUint(v)
	return nil
}

// ptr mengubah nilai kosong menjadi nil agar kolom nullable terisi NULL.
func (f *flexUint) ptr() *uint {
	if f == nil || *f == 0 {
		return nil
	}
	v := uint(*f)
	return &v
}

// flexDate menerima "2006-01-02" atau RFC3339; "" dan null dianggap kosong.
type flexDate struct {
	t *time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		d.t = nil
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.t = &t
			return nil
		}
	}
	return errors.New("format tanggal tidak valid")
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return nil
}

func paramID(c *fiber.Ctx, name, message string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.BadRequest(message)
	}
	return uint(id), nil
}

// queryUint mengembalikan 0 jika parameter kosong atau bukan angka.
func queryUint(c *fiber.Ctx, name string) uint {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Query(name)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func queryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.BadRequest("Format tanggal tidak valid. Gunakan YYYY-MM-DD.")
	}
	return &t, nil
}

func currentUser(c *fiber.Ctx) (*auth.UserClaims, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperror.Unauthorized("Token tidak valid.")
	}
	return user, nil
}

// hotelScope membatasi data ke hotel yang boleh dilihat user, dengan filter hotel_id opsional.
func hotelScope(c *fiber.Ctx, user *auth.UserClaims) repository.HotelScope {
	return repository.HotelScope{
		HotelID: queryUint(c, "hotel_id"),
		UserID:  user.ID,
		Admin:   user.Role == model.RoleAdmin,
	}
}

// orEmpty memastikan list kosong dikirim sebagai [] bukan null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

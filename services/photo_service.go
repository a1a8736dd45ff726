package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/freshfold/freshfold-api/utils"
)

// ErrInvalidFilename is returned for uploads whose original name contains a
// path traversal segment
var ErrInvalidFilename = errors.New("invalid filename")

// PhotoService assigns convention-based names to order photos and lists them
// back in upload order. The first photo of order N is stored as N.ext, later
// ones as N_1.ext, N_2.ext and so on, with gapless ordinals.
type PhotoService struct {
	store ObjectStore
	locks *orderLocks
}

// NewPhotoService creates a photo service over the given byte storage
func NewPhotoService(store ObjectStore) *PhotoService {
	return &PhotoService{
		store: store,
		locks: newOrderLocks(),
	}
}

// StoreForOrder writes the uploaded bytes under the next name in the order's
// sequence and returns the stored name. Scanning existing names, picking the
// next ordinal and writing happen under a per-order lock so two concurrent
// uploads cannot claim the same ordinal.
func (s *PhotoService) StoreForOrder(orderID uint, data []byte, originalFilename string) (string, error) {
	if strings.Contains(originalFilename, "..") {
		return "", ErrInvalidFilename
	}
	ext := utils.FileExtension(originalFilename)

	lock := s.locks.get(orderID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.listNamesForOrder(orderID)
	if err != nil {
		return "", err
	}

	ordinal := 0
	if len(existing) > 0 {
		maxOrdinal := 0
		for _, name := range existing {
			if _, n, ok := utils.ParseOrderPhotoName(name); ok && n > maxOrdinal {
				maxOrdinal = n
			}
		}
		ordinal = maxOrdinal + 1
	}

	filename := utils.BuildOrderPhotoName(orderID, ordinal, ext)
	if err := s.store.Put(filename, data, contentTypeForExt(ext)); err != nil {
		return "", fmt.Errorf("failed to store photo %s: %w", filename, err)
	}

	return filename, nil
}

// ListForOrder returns the stored names belonging to the order, ordered by
// ascending ordinal (the bare unsuffixed name first)
func (s *PhotoService) ListForOrder(orderID uint) ([]string, error) {
	return s.listNamesForOrder(orderID)
}

func (s *PhotoService) listNamesForOrder(orderID uint) ([]string, error) {
	names, err := s.store.List()
	if err != nil {
		return nil, err
	}

	id := strconv.FormatUint(uint64(orderID), 10)
	matched := make([]string, 0, len(names))
	for _, name := range names {
		if owner, _, ok := utils.ParseOrderPhotoName(name); ok && owner == id {
			matched = append(matched, name)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		_, a, _ := utils.ParseOrderPhotoName(matched[i])
		_, b, _ := utils.ParseOrderPhotoName(matched[j])
		return a < b
	})

	return matched, nil
}

// URLFor maps a stored name to its serving path. Pure, no I/O.
func (s *PhotoService) URLFor(storedName string) string {
	if storedName == "" {
		return ""
	}
	return "/api/uploads/" + storedName
}

// Load returns the bytes of a previously stored photo
func (s *PhotoService) Load(storedName string) ([]byte, error) {
	return s.store.Get(storedName)
}

// contentTypeForExt maps the photo extensions the naming convention accepts
// to their media types
func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"pteguide_backend/internals/features/users/account/model"
)

var (
	ErrCredentialsRequired = errors.New("please enter both name and PIN")
	ErrInvalidPIN          = errors.New("PIN must be 4-6 digits")
	ErrDuplicate           = errors.New("this name and PIN combination already exists")
	// ErrNoMatch is the single outcome for unknown name and wrong PIN alike,
	// so a caller cannot probe which names exist.
	ErrNoMatch = errors.New("invalid name or PIN")
)

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

func (s *AccountService) Register(name, pin string) (*model.SimpleUserModel, error) {
	name = strings.TrimSpace(name)
	pin = strings.TrimSpace(pin)
	if name == "" || pin == "" {
		return nil, ErrCredentialsRequired
	}
	if !validPIN(pin) {
		return nil, ErrInvalidPIN
	}

	user := model.SimpleUserModel{Name: name, LastLogin: time.Now()}
	user.SetPIN(pin)

	var count int64
	if err := s.db.Model(&model.SimpleUserModel{}).
		Where("name = ? AND pin_hash = ?", user.Name, user.PinHash).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	if err := s.db.Create(&user).Error; err != nil {
		// unique index backstops a racing duplicate registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &user, nil
}

func (s *AccountService) Authenticate(name, pin string) (*model.SimpleUserModel, error) {
	name = strings.TrimSpace(name)
	pin = strings.TrimSpace(pin)
	if name == "" || pin == "" {
		return nil, ErrNoMatch
	}

	var users []model.SimpleUserModel
	if err := s.db.Where("name = ?", name).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].CheckPIN(pin) {
			return &users[i], nil
		}
	}
	return nil, ErrNoMatch
}

func (s *AccountService) TouchLastLogin(user *model.SimpleUserModel) error {
	now := time.Now()
	if err := s.db.Model(user).Update("last_login", now).Error; err != nil {
		return err
	}
	user.LastLogin = now
	return nil
}

func validPIN(pin string) bool {
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

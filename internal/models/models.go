package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	// RefreshToken is the single currently valid refresh token for the
	// user; empty means none has been issued yet.
	RefreshToken string `json:"-"`
}

type Task struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"index;not null"           json:"username"`
	TaskName       string    `gorm:"not null"                 json:"task_name"`
	ActualCycle    int       `json:"actual_cycle"`
	TargetCycle    int       `json:"target_cycle"`
	CompleteStatus bool      `json:"complete_status"`
	ActiveStatus   bool      `json:"active_status"`
	Timestamp      time.Time `json:"timestamp"`
}

type Setting struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"unique;not null"          json:"username"`
	Pomodoro  int    `json:"pomodoro"`
	Short     int    `json:"short"`
	Long      int    `json:"long"`
	Alarm     string `json:"alarm"`
	Backsound string `json:"backsound"`
}

package models

import "errors"

var (
	// ErrEligibilityMismatch - кандидат перестал подходить под условия ротации к моменту активации.
	ErrEligibilityMismatch = errors.New("tender is no longer eligible for rotation")

	// ErrIDCollision - не удалось подобрать свободный публичный идентификатор за отведённое число попыток.
	ErrIDCollision = errors.New("unique public id attempts exhausted")

	// ErrConversionConflict - цикл уже завершён другим участником гонки (истёк или заключён).
	ErrConversionConflict = errors.New("cycle already expired or awarded")

	// ErrTenderNotFound - тендер с указанным идентификатором не найден.
	ErrTenderNotFound = errors.New("tender not found")
)

package domain

import "strings"

// ActionType - внутренний числовой идентификатор намерения игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionMelee
	ActionShoot
	ActionBuildWood
	ActionBuildStone
	ActionToggleInventory
	ActionRestart

	// Админ-команды (только с включённым debug)
	ActionAdminHeal
	ActionAdminGive
	ActionAdminSkipPrep
	ActionAdminSpawn
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":        ActionInit,
	"MOVE":        ActionMove,
	"MELEE":       ActionMelee,
	"SHOOT":       ActionShoot,
	"BUILD_WOOD":  ActionBuildWood,
	"BUILD_STONE": ActionBuildStone,
	"INVENTORY":   ActionToggleInventory,
	"RESTART":     ActionRestart,

	"ADMIN_HEAL":      ActionAdminHeal,
	"ADMIN_GIVE":      ActionAdminGive,
	"ADMIN_SKIP_PREP": ActionAdminSkipPrep,
	"ADMIN_SPAWN":     ActionAdminSpawn,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:            "INIT",
	ActionMove:            "MOVE",
	ActionMelee:           "MELEE",
	ActionShoot:           "SHOOT",
	ActionBuildWood:       "BUILD_WOOD",
	ActionBuildStone:      "BUILD_STONE",
	ActionToggleInventory: "INVENTORY",
	ActionRestart:         "RESTART",

	ActionAdminHeal:     "ADMIN_HEAL",
	ActionAdminGive:     "ADMIN_GIVE",
	ActionAdminSkipPrep: "ADMIN_SKIP_PREP",
	ActionAdminSpawn:    "ADMIN_SPAWN",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsAdmin - команда доступна только в debug-режиме.
func (a ActionType) IsAdmin() bool {
	return a >= ActionAdminHeal && a <= ActionAdminSpawn
}

package model

// Accessibility roles observed across native, Java/Swing and web-rendered
// toolkits. The raw AX strings are kept rather than remapped: the
// clickability heuristics below are calibrated against these exact values.
const (
	RoleButton             = "AXButton"
	RoleLink               = "AXLink"
	RoleMenuItem           = "AXMenuItem"
	RoleMenuBarItem        = "AXMenuBarItem"
	RoleCheckBox           = "AXCheckBox"
	RoleRadioButton        = "AXRadioButton"
	RolePopUpButton        = "AXPopUpButton"
	RoleMenuButton         = "AXMenuButton"
	RoleDisclosureTriangle = "AXDisclosureTriangle"
	RoleIncrementor        = "AXIncrementor"
	RoleCell               = "AXCell"
	RoleTab                = "AXTabButton"
	RoleToolbarButton      = "AXToolbarButton"
	RoleColorWell          = "AXColorWell"
	RoleSlider             = "AXSlider"
	RoleTextField          = "AXTextField"
	RoleTextArea           = "AXTextArea"
	RoleComboBox           = "AXComboBox"
	RoleStaticText         = "AXStaticText"
)

// ClickableRoles is the fixed set of roles that receive labels outright.
// AXStaticText is deliberately absent: it is only included when it matches
// a tab shape (see IsClickable).
var ClickableRoles = map[string]bool{
	RoleButton:             true,
	RoleLink:               true,
	RoleMenuItem:           true,
	RoleMenuBarItem:        true,
	RoleCheckBox:           true,
	RoleRadioButton:        true,
	RolePopUpButton:        true,
	RoleMenuButton:         true,
	RoleDisclosureTriangle: true,
	RoleIncrementor:        true,
	RoleCell:               true,
	RoleTab:                true,
	RoleToolbarButton:      true,
	RoleColorWell:          true,
	RoleSlider:             true,
	RoleTextField:          true,
	RoleTextArea:           true,
	RoleComboBox:           true,
}

// LeafRoles are roles whose elements never hide further distinct controls
// inside their frame. The hit-test scanner uses this to jump past a wide
// control instead of re-sampling every stride within it.
var LeafRoles = map[string]bool{
	RoleButton:        true,
	RoleLink:          true,
	RoleMenuItem:      true,
	RoleMenuBarItem:   true,
	RoleCheckBox:      true,
	RoleRadioButton:   true,
	RoleTab:           true,
	RoleToolbarButton: true,
	RoleStaticText:    true,
}

// MenuRoles are the roles the menu-bar scanner accepts for status-tray
// icons, where exact geometry is often unavailable.
var MenuRoles = map[string]bool{
	RoleMenuBarItem: true,
	RoleMenuItem:    true,
	RoleButton:      true,
	RoleMenuButton:  true,
}

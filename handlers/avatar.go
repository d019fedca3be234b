package handlers

import (
	"log/slog"

	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

// Avatar inspects one player's avatar at a time. Sub-pages cycle players.
type Avatar struct {
	source AvatarSource
	menu   *overlay.Menu
	cursor cursor

	username   *ui.Widget
	avatarName *ui.Widget
	local      *ui.Widget
	pointers   *ui.Widget
	triggers   *ui.Widget
	parameters parameterRows
}

// NewAvatar creates the avatar page over source.
func NewAvatar(source AvatarSource) *Avatar {
	return &Avatar{source: source}
}

func (h *Avatar) Name() string { return "Avatars" }

func (h *Avatar) Load(m *overlay.Menu) {
	h.menu = m
	h.cursor.current = ""

	m.AddNewDebugger("Avatars")
	attributes := m.AddCategory("Attributes")
	h.username = m.AddCategoryEntry(attributes, "User Name")
	h.avatarName = m.AddCategoryEntry(attributes, "Avatar Name")
	h.local = m.AddCategoryEntry(attributes, "Local")
	h.pointers = m.AddCategoryEntry(attributes, "Pointers")
	h.triggers = m.AddCategoryEntry(attributes, "Triggers")
	h.parameters.reset(m.AddCategory("Parameters"))
}

func (h *Avatar) Unload() {
	h.cursor.current = ""
}

func (h *Avatar) Update(frame *overlay.Frame) {
	m := h.menu
	avatars := h.source.Avatars()

	i := h.cursor.resolve(len(avatars))
	if i < 0 {
		showEmpty(m, &h.cursor)
		return
	}
	m.ShowControls(len(avatars) > 1)
	m.ToggleCategories(true)

	avatar := avatars[i]
	if avatar.PlayerID != h.cursor.current {
		m.Logger().Debug("inspecting avatar",
			slog.String("player", avatar.PlayerID),
			slog.String("avatar", avatar.AvatarID))
		inspect(m, avatar.PlayerID, avatar.Pointers, avatar.Triggers)
		h.cursor.current = avatar.PlayerID
	}
	setPosition(m, i, len(avatars))

	m.SetText(h.username, overlay.String(m.Username(avatar.PlayerID)))
	m.SetText(h.avatarName, overlay.String(m.AvatarName(avatar.AvatarID)))
	m.SetText(h.local, overlay.Bool(avatar.IsLocal))
	m.SetText(h.pointers, overlay.Int(len(avatar.Pointers)))
	m.SetText(h.triggers, overlay.Int(len(avatar.Triggers)))
	h.parameters.sync(m, avatar.Parameters)
}

func (h *Avatar) NextSubPage()     { h.cursor.next() }
func (h *Avatar) PreviousSubPage() { h.cursor.previous() }

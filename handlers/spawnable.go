package handlers

import (
	"log/slog"

	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

// Spawnable inspects one spawned prop at a time. Sub-pages cycle instances.
type Spawnable struct {
	source SpawnableSource
	menu   *overlay.Menu
	cursor cursor

	name       *ui.Widget
	owner      *ui.Widget
	instance   *ui.Widget
	lastUpdate *ui.Widget
	syncValues parameterRows
}

// NewSpawnable creates the spawnable page over source.
func NewSpawnable(source SpawnableSource) *Spawnable {
	return &Spawnable{source: source}
}

func (h *Spawnable) Name() string { return "Spawnables" }

func (h *Spawnable) Load(m *overlay.Menu) {
	h.menu = m
	h.cursor.current = ""

	m.AddNewDebugger("Spawnables")
	attributes := m.AddCategory("Attributes")
	h.name = m.AddCategoryEntry(attributes, "Spawnable Name")
	h.owner = m.AddCategoryEntry(attributes, "Owner")
	h.instance = m.AddCategoryEntry(attributes, "Instance")
	h.lastUpdate = m.AddCategoryEntry(attributes, "Last Update")
	h.syncValues.reset(m.AddCategory("Sync Values"))
}

func (h *Spawnable) Unload() {
	h.cursor.current = ""
}

func (h *Spawnable) Update(frame *overlay.Frame) {
	m := h.menu
	spawnables := h.source.Spawnables()

	i := h.cursor.resolve(len(spawnables))
	if i < 0 {
		showEmpty(m, &h.cursor)
		return
	}
	m.ShowControls(len(spawnables) > 1)
	m.ToggleCategories(true)

	prop := spawnables[i]
	if prop.InstanceID != h.cursor.current {
		m.Logger().Debug("inspecting spawnable",
			slog.String("instance", prop.InstanceID),
			slog.String("spawnable", prop.SpawnableID))
		inspect(m, prop.InstanceID, prop.Pointers, prop.Triggers)
		h.cursor.current = prop.InstanceID
	}
	setPosition(m, i, len(spawnables))

	m.SetText(h.name, overlay.String(m.SpawnableName(prop.SpawnableID)))
	m.SetText(h.owner, overlay.String(m.Username(prop.OwnerID)))
	m.SetText(h.instance, overlay.String(overlay.ShortID(prop.InstanceID)))
	m.SetText(h.lastUpdate, overlay.String(overlay.TimeDifference(frame.Time, prop.LastUpdated)))
	h.syncValues.sync(m, prop.SyncValues)
}

func (h *Spawnable) NextSubPage()     { h.cursor.next() }
func (h *Spawnable) PreviousSubPage() { h.cursor.previous() }

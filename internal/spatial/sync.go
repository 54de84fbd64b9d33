package spatial

import (
	"zone-service/internal/model"
)

// MembershipUpdate is the recomputed member list for one zone. Changed
// is false when the list already matched the zone's cached device_ids,
// so callers can skip the write (and the updated_at bump) for untouched
// zones.
type MembershipUpdate struct {
	Zone      *model.Zone    `json:"-"`
	DeviceIDs model.UUIDList `json:"device_ids"`
	Changed   bool           `json:"changed"`
}

// SyncZoneDevices recomputes every zone's member list by testing each
// positioned device against the zone's polygon. Unlike FindZoneForDevice
// this evaluates zones independently: a device inside two overlapping
// polygons appears in both lists. Unpositioned devices appear in none.
// Running it twice over an unchanged snapshot returns identical lists
// with Changed false on the second pass.
func SyncZoneDevices(devices []model.Device, zones []model.Zone) []MembershipUpdate {
	updates := make([]MembershipUpdate, 0, len(zones))
	for i := range zones {
		zone := &zones[i]
		members := make(model.UUIDList, 0)
		for j := range devices {
			d := &devices[j]
			if !d.Positioned() {
				continue
			}
			if PointInPolygon(d.Position(), zone.Polygon) {
				members = append(members, d.ID)
			}
		}
		updates = append(updates, MembershipUpdate{
			Zone:      zone,
			DeviceIDs: members,
			Changed:   !sameIDs(zone.DeviceIDs, members),
		})
	}
	return updates
}

func sameIDs(a, b model.UUIDList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

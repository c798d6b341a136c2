package core

import "testing"

func TestAABB_HitMissesBoxBehindRay(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)) // pointing away from box
	if box.Hit(ray, 0.001, 1000) {
		t.Error("expected no hit for a ray pointing away from the box")
	}
}

func TestAABB_HitFindsBoxAhead(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !box.Hit(ray, 0.001, 1000) {
		t.Error("expected a hit for a ray pointing at the box")
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Errorf("expected longest axis 1 (Y), got %d", axis)
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(0.5, 0.5, 0.5))
	u := a.Union(b)
	want := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	if u.Min.Subtract(want.Min).Length() > 1e-9 || u.Max.Subtract(want.Max).Length() > 1e-9 {
		t.Errorf("Union = %v, want %v", u, want)
	}
}

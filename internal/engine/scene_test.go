package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneAddTwiceIsNoop(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Block")

	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if scene.Len() != 1 {
		t.Errorf("Expected 1 GameObject, got %d", scene.Len())
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	notFound := scene.FindByUID(1 << 62)
	if notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Block1")
	obj2 := NewGameObject("Block2")
	obj3 := NewGameObject("Block3")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if !scene.RemoveGameObject(obj2) {
		t.Fatal("RemoveGameObject should report success")
	}

	if len(scene.GameObjects) != 2 {
		t.Errorf("Expected 2 GameObjects after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj1 || scene.GameObjects[1] != obj3 {
		t.Error("Remaining GameObjects out of order")
	}

	if scene.FindByUID(obj2.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if obj2.Scene != nil {
		t.Error("Removed GameObject should have nil Scene")
	}

	if scene.RemoveGameObject(obj2) {
		t.Error("Removing twice should report false")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

func TestEventWithArgInvoke(t *testing.T) {
	var ev EventWithArg[int]
	sum := 0

	ev.AddListener(func(v int) { sum += v })
	ev.AddListener(func(v int) { sum += v * 10 })
	ev.AddListener(nil) // ignored

	ev.Invoke(2)

	if sum != 22 {
		t.Errorf("Expected sum 22, got %d", sum)
	}
}

func TestEventWithArgNoListeners(t *testing.T) {
	var ev EventWithArg[string]
	ev.Invoke("nobody") // Should not panic
}

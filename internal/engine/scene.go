package engine

// Scene is the root of the scene graph. Nodes are only ever appended.
type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	for _, c := range g.Children {
		setScene(c, s)
	}
	s.GameObjects = append(s.GameObjects, g)
}

func setScene(g *GameObject, s *Scene) {
	g.Scene = s
	for _, c := range g.Children {
		setScene(c, s)
	}
}

// Walk visits every node reachable from the root depth-first. Returning
// false from fn skips that node's children.
func (s *Scene) Walk(fn func(g *GameObject) bool) {
	for _, g := range s.GameObjects {
		walk(g, fn)
	}
}

func walk(g *GameObject, fn func(*GameObject) bool) {
	if !fn(g) {
		return
	}
	for _, c := range g.Children {
		walk(c, fn)
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Walk(func(g *GameObject) bool {
		if found == nil && g.Name == name {
			found = g
		}
		return found == nil
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Walk(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

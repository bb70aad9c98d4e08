package storage

// Modify is a single modification to the raw store, either a Put or a Delete.
type Modify struct {
	Data interface{}
}

type Put struct {
	Key   []byte
	Value []byte
	Cf    string
}

type Delete struct {
	Key []byte
	Cf  string
}

func NewPut(cf string, key, value []byte) Modify {
	return Modify{Put{Key: key, Value: value, Cf: cf}}
}

func NewDelete(cf string, key []byte) Modify {
	return Modify{Delete{Key: key, Cf: cf}}
}

func (m *Modify) Key() []byte {
	switch m.Data.(type) {
	case Put:
		return m.Data.(Put).Key
	case Delete:
		return m.Data.(Delete).Key
	}
	return nil
}

func (m *Modify) Cf() string {
	switch m.Data.(type) {
	case Put:
		return m.Data.(Put).Cf
	case Delete:
		return m.Data.(Delete).Cf
	}
	return ""
}

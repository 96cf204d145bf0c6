package ast

type (
	// главные сущности
	FileID uint32
	DeclID uint32
	PatID  uint32
	TypeID uint32
	// подсущности
	PayloadID uint32
	ObjPropID uint32
)

const (
	NoFileID    FileID    = 0
	NoDeclID    DeclID    = 0
	NoPatID     PatID     = 0
	NoTypeID    TypeID    = 0
	NoPayloadID PayloadID = 0
	NoObjPropID ObjPropID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id PatID) IsValid() bool     { return id != NoPatID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id ObjPropID) IsValid() bool { return id != NoObjPropID }

package entity

type RoomType string

const (
	RoomType2D   RoomType = "2D"
	RoomType3D   RoomType = "3D"
	RoomTypeIMAX RoomType = "IMAX"
	RoomTypeVIP  RoomType = "VIP"
)

type Room struct {
	Base
	Name     string   `db:"name"`
	Capacity int      `db:"capacity"`
	Type     RoomType `db:"type"`
	Active   bool     `db:"active"`
}

package request

type RoomRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Capacity int    `json:"capacity" validate:"required,gt=0,lte=10000"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=2D 3D IMAX VIP"`
}

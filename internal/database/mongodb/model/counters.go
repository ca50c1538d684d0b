package model

type Counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

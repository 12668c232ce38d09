// Package snowflake hands out unique int64 identifiers for events,
// comments and translation rows.
package snowflake

import (
	"errors"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init sets up the generator. nodeID must be unique per running
// instance (0-1023) so IDs never collide across deployments.
func Init(nodeID int64) error {
	if nodeID < 0 || nodeID > 1023 {
		return errors.New("snowflake node ID must be in 0-1023")
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID generates a new unique ID. Init must have been called first.
func NextID() int64 {
	return node.Generate().Int64()
}

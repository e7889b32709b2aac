package places

import "fmt"

func cacheKeyPlace(id string) string {
	return fmt.Sprintf("place:%s", id)
}

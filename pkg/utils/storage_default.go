//go:build !android

package utils

// EnsureStorageDir 确保进度存储目录存在
// 非 Android 平台上 gdata 会自行创建目录，这里不需要做任何事
func EnsureStorageDir() error {
	return nil
}

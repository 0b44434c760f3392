package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/scenecore/pkg/math"
)

// Vec3 logs a vector as {x, y, z}.
func Vec3(key string, v math.Vec3) zap.Field {
	return zap.Object(key, vec3Marshaler(v))
}

// AABB logs a bounding box as {min, max}, or {empty: true}.
func AABB(key string, b math.AABB) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		if b.IsEmpty() {
			enc.AddBool("empty", true)
			return nil
		}
		if err := enc.AddObject("min", vec3Marshaler(b.Min)); err != nil {
			return err
		}
		return enc.AddObject("max", vec3Marshaler(b.Max))
	}))
}

func vec3Marshaler(v math.Vec3) zapcore.ObjectMarshalerFunc {
	return func(enc zapcore.ObjectEncoder) error {
		enc.AddFloat32("x", v.X)
		enc.AddFloat32("y", v.Y)
		enc.AddFloat32("z", v.Z)
		return nil
	}
}

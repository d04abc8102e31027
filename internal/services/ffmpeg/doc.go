// Package ffmpeg runs the external transcoder as a blocking subprocess.
//
// The client owns nothing but process plumbing: argument vectors are built
// by the transcode package, and success is judged by the caller from the
// filesystem rather than from the exit status reported here.
package ffmpeg

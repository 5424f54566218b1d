/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package status provides elapsed-time status logging for long-running
// key-generation and encryption calls, the way a CLI driver reports
// progress against a wall-clock start.
package status

import (
	"log/slog"
	"time"
)

// Logger reports elapsed time relative to the moment it was created.
type Logger struct {
	start time.Time
}

// New returns a Logger whose clock starts now.
func New() *Logger {
	return &Logger{start: time.Now()}
}

// Report logs msg along with the seconds elapsed since l was created.
func (l *Logger) Report(msg string) {
	slog.Info(msg, "elapsed_seconds", time.Since(l.start).Seconds())
}

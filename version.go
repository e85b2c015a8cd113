// SPDX-License-Identifier: MIT

package numeth

// Version is the release of the numeth module and command.
const Version = "0.1.0"
